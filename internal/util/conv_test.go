package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), MustParseUint("42"))
	assert.Equal(t, uint(0), MustParseUint("abc"))
	assert.Equal(t, uint(0), MustParseUint(""))
	assert.Equal(t, uint(0), MustParseUint("-1"))
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		max  int
		want int
	}{
		{"空串回退默认值", "", 10, 100, 10},
		{"正常取值", "25", 10, 100, 25},
		{"超过上限截断", "500", 10, 100, 100},
		{"零回退默认值", "0", 10, 100, 10},
		{"负数回退默认值", "-3", 10, 100, 10},
		{"非数字回退默认值", "abc", 10, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLimit(tt.in, tt.def, tt.max))
		})
	}
}
