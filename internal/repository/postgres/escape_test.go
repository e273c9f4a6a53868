package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain term untouched", "paris", "paris"},
		{"percent", "10%", `10\%`},
		{"underscore", "a_l", `a\_l`},
		{"backslash before metacharacters", `c:\10%`, `c:\\10\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
