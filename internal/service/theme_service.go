package service

import (
	"fmt"
	"strings"
)

const DefaultTheme = "indigo"

// ThemePalette 前端主题配色
// swagger:model
type ThemePalette struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Primary     string `json:"primary"`
	PrimaryDark string `json:"primaryDark"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	BgGlass     string `json:"bgGlass"`
	BorderGlass string `json:"borderGlass"`
	TextMain    string `json:"textMain"`
	TextMuted   string `json:"textMuted"`
	Success     string `json:"success"`
	Error       string `json:"error"`
	Warning     string `json:"warning"`
	Info        string `json:"info"`
	BgLight     string `json:"bgLight"`
	BgBody      string `json:"bgBody"`
}

var themeOrder = []string{"indigo", "ocean", "forest", "sunset", "violet", "slate", "rose"}

var themes = map[string]ThemePalette{
	"indigo": {
		Name:        "indigo",
		Description: "Modern purple with pink accents - Professional & vibrant",
		Primary:     "#6366f1",
		PrimaryDark: "#4f46e5",
		Secondary:   "#ec4899",
		Accent:      "#8b5cf6",
		BgGlass:     "rgba(255, 255, 255, 0.75)",
		BorderGlass: "rgba(255, 255, 255, 0.4)",
		TextMain:    "#0f172a",
		TextMuted:   "#64748b",
		Success:     "#10b981",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#3b82f6",
		BgLight:     "#f8fafc",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(99, 102, 241, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(236, 72, 153, 0.03) 0%, transparent 50%), #f8fafc",
	},
	"ocean": {
		Name:        "ocean",
		Description: "Cool cyan & teal - Fresh & calming",
		Primary:     "#0891b2",
		PrimaryDark: "#0e7490",
		Secondary:   "#06b6d4",
		Accent:      "#00d9ff",
		BgGlass:     "rgba(240, 249, 255, 0.8)",
		BorderGlass: "rgba(6, 182, 212, 0.2)",
		TextMain:    "#082f49",
		TextMuted:   "#164e63",
		Success:     "#10b981",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#0891b2",
		BgLight:     "#f0f9ff",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(8, 145, 178, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(6, 182, 212, 0.03) 0%, transparent 50%), #f0f9ff",
	},
	"forest": {
		Name:        "forest",
		Description: "Rich green palette - Natural & harmonious",
		Primary:     "#059669",
		PrimaryDark: "#047857",
		Secondary:   "#10b981",
		Accent:      "#34d399",
		BgGlass:     "rgba(240, 253, 250, 0.8)",
		BorderGlass: "rgba(5, 150, 105, 0.2)",
		TextMain:    "#064e3b",
		TextMuted:   "#065f46",
		Success:     "#059669",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#0891b2",
		BgLight:     "#f0fdf4",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(5, 150, 105, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(16, 185, 129, 0.03) 0%, transparent 50%), #f0fdf4",
	},
	"sunset": {
		Name:        "sunset",
		Description: "Warm orange & amber - Energetic & inviting",
		Primary:     "#ea580c",
		PrimaryDark: "#c2410c",
		Secondary:   "#f97316",
		Accent:      "#fb923c",
		BgGlass:     "rgba(255, 247, 237, 0.9)",
		BorderGlass: "rgba(234, 88, 12, 0.2)",
		TextMain:    "#7c2d12",
		TextMuted:   "#92400e",
		Success:     "#10b981",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#0891b2",
		BgLight:     "#fffbf0",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(234, 88, 12, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(249, 115, 22, 0.03) 0%, transparent 50%), #fffbf0",
	},
	"violet": {
		Name:        "violet",
		Description: "Deep purple & magenta - Bold & creative",
		Primary:     "#9333ea",
		PrimaryDark: "#7e22ce",
		Secondary:   "#a855f7",
		Accent:      "#d946ef",
		BgGlass:     "rgba(250, 240, 255, 0.85)",
		BorderGlass: "rgba(147, 51, 234, 0.2)",
		TextMain:    "#4c0519",
		TextMuted:   "#6b21a8",
		Success:     "#10b981",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#0891b2",
		BgLight:     "#faf5ff",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(147, 51, 234, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(217, 70, 239, 0.03) 0%, transparent 50%), #faf5ff",
	},
	"slate": {
		Name:        "slate",
		Description: "Neutral gray tones - Classic & minimal",
		Primary:     "#64748b",
		PrimaryDark: "#475569",
		Secondary:   "#475569",
		Accent:      "#78716c",
		BgGlass:     "rgba(248, 250, 252, 0.9)",
		BorderGlass: "rgba(100, 116, 139, 0.2)",
		TextMain:    "#0f172a",
		TextMuted:   "#475569",
		Success:     "#10b981",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#0891b2",
		BgLight:     "#f8fafc",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(100, 116, 139, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(71, 85, 105, 0.03) 0%, transparent 50%), #f8fafc",
	},
	"rose": {
		Name:        "rose",
		Description: "Deep red & pink - Elegant & sophisticated",
		Primary:     "#e11d48",
		PrimaryDark: "#be185d",
		Secondary:   "#f43f5e",
		Accent:      "#fb7185",
		BgGlass:     "rgba(255, 240, 245, 0.85)",
		BorderGlass: "rgba(225, 29, 72, 0.2)",
		TextMain:    "#500724",
		TextMuted:   "#831843",
		Success:     "#10b981",
		Error:       "#ef4444",
		Warning:     "#f59e0b",
		Info:        "#0891b2",
		BgLight:     "#fff5f7",
		BgBody:      "radial-gradient(circle at 0% 0%, rgba(225, 29, 72, 0.03) 0%, transparent 50%), radial-gradient(circle at 100% 100%, rgba(244, 63, 94, 0.03) 0%, transparent 50%), #fff5f7",
	},
}

type ThemeService struct{}

func NewThemeService() *ThemeService {
	return &ThemeService{}
}

// ListThemes 按固定顺序返回全部主题
func (s *ThemeService) ListThemes() []ThemePalette {
	list := make([]ThemePalette, 0, len(themeOrder))
	for _, name := range themeOrder {
		list = append(list, themes[name])
	}
	return list
}

// GetTheme 按名称取主题，未知名称回落到默认主题
func (s *ThemeService) GetTheme(name string) ThemePalette {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes[DefaultTheme]
}

// CSS 生成主题的 :root 自定义属性块，供前端直接引用
func (s *ThemeService) CSS(name string) string {
	theme := s.GetTheme(name)

	var b strings.Builder
	fmt.Fprintf(&b, "/* Theme: %s */\n", theme.Name)
	b.WriteString(":root {\n")
	fmt.Fprintf(&b, "  --primary: %s;\n", theme.Primary)
	fmt.Fprintf(&b, "  --primary-dark: %s;\n", theme.PrimaryDark)
	fmt.Fprintf(&b, "  --secondary: %s;\n", theme.Secondary)
	fmt.Fprintf(&b, "  --accent: %s;\n", theme.Accent)
	fmt.Fprintf(&b, "  --bg-glass: %s;\n", theme.BgGlass)
	fmt.Fprintf(&b, "  --border-glass: %s;\n", theme.BorderGlass)
	fmt.Fprintf(&b, "  --text-main: %s;\n", theme.TextMain)
	fmt.Fprintf(&b, "  --text-muted: %s;\n", theme.TextMuted)
	fmt.Fprintf(&b, "  --success: %s;\n", theme.Success)
	fmt.Fprintf(&b, "  --error: %s;\n", theme.Error)
	fmt.Fprintf(&b, "  --warning: %s;\n", theme.Warning)
	fmt.Fprintf(&b, "  --info: %s;\n", theme.Info)
	fmt.Fprintf(&b, "  --bg-light: %s;\n", theme.BgLight)
	b.WriteString("  --shadow-sm: 0 1px 3px 0 rgba(0, 0, 0, 0.08), 0 1px 2px 0 rgba(0, 0, 0, 0.04);\n")
	b.WriteString("  --shadow-md: 0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06);\n")
	b.WriteString("  --shadow-lg: 0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05);\n")
	b.WriteString("  --radius-sm: 8px;\n")
	b.WriteString("  --radius-md: 12px;\n")
	b.WriteString("  --radius-lg: 16px;\n")
	b.WriteString("  --transition-base: all 0.3s cubic-bezier(0.4, 0, 0.2, 1);\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "body {\n  background: %s;\n  color: var(--text-main);\n}\n", theme.BgBody)
	return b.String()
}
