package model

// OptionLetters 选项字母表，选项数量上限为 8
var OptionLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

const (
	MinOptionCount = 2
	MaxOptionCount = 8
)

// LettersFor 返回前 n 个选项字母；n 越界时返回 nil
func LettersFor(n int) []string {
	if n <= 0 || n > len(OptionLetters) {
		return nil
	}
	letters := make([]string, n)
	copy(letters, OptionLetters[:n])
	return letters
}

// IsValidLetter 判断 letter 是否属于前 optionCount 个选项字母
func IsValidLetter(letter string, optionCount int) bool {
	if optionCount <= 0 || optionCount > len(OptionLetters) {
		return false
	}
	for _, l := range OptionLetters[:optionCount] {
		if letter == l {
			return true
		}
	}
	return false
}
