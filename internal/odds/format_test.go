package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoneyline(t *testing.T) {
	assert.Equal(t, "+160", FormatMoneyline(160))
	assert.Equal(t, "-190", FormatMoneyline(-190))
	assert.Equal(t, "0", FormatMoneyline(0))
}

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "+1.5", FormatLine(1.5))
	assert.Equal(t, "-1.5", FormatLine(-1.5))
	assert.Equal(t, "+2", FormatLine(2))
}

func TestMoneylineToDecimal(t *testing.T) {
	tests := []struct {
		ml   int
		want string
	}{
		{160, "2.6"},
		{-190, "1.53"},
		{-150, "1.67"},
		{100, "2"},
		{0, "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MoneylineToDecimal(tt.ml).String(), "ml=%d", tt.ml)
	}
}
