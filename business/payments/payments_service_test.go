package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "254712345678", "254712345678"},
		{"local format", "0712345678", "254712345678"},
		{"international prefix", "+254712345678", "254712345678"},
		{"surrounding spaces", " 0712345678 ", "254712345678"},
		{"too short", "07123", ""},
		{"wrong country code", "255712345678", ""},
		{"letters", "07123456ab", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizePhone(tc.input))
		})
	}
}
