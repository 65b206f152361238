package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListThemes(t *testing.T) {
	svc := NewThemeService()

	list := svc.ListThemes()
	require.Len(t, list, 7)

	names := make([]string, len(list))
	for i, theme := range list {
		names[i] = theme.Name
	}
	assert.Equal(t, []string{"indigo", "ocean", "forest", "sunset", "violet", "slate", "rose"}, names)
}

func TestGetTheme(t *testing.T) {
	svc := NewThemeService()

	ocean := svc.GetTheme("ocean")
	assert.Equal(t, "ocean", ocean.Name)
	assert.Equal(t, "#0891b2", ocean.Primary)

	// 未知名称回落到默认主题
	fallback := svc.GetTheme("neon")
	assert.Equal(t, DefaultTheme, fallback.Name)
	assert.Equal(t, "#6366f1", fallback.Primary)
}

func TestThemeCSS(t *testing.T) {
	svc := NewThemeService()

	css := svc.CSS("indigo")
	assert.True(t, strings.HasPrefix(css, "/* Theme: indigo */\n"))
	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--primary: #6366f1;")
	assert.Contains(t, css, "--primary-dark: #4f46e5;")
	assert.Contains(t, css, "--bg-glass: rgba(255, 255, 255, 0.75);")
	assert.Contains(t, css, "--radius-md: 12px;")
	assert.Contains(t, css, "body {")
	assert.Contains(t, css, "color: var(--text-main);")

	sunset := svc.CSS("sunset")
	assert.Contains(t, sunset, "--primary: #ea580c;")

	// 未知名称的样式与默认主题一致
	assert.Equal(t, svc.CSS(DefaultTheme), svc.CSS("unknown"))
}
