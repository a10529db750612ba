package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weddingtools/rsvpkit/pkg/validate"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips plus and spaces", "+34 600 123 456", "34600123456"},
		{"strips punctuation", "(34) 600-123", "34600123"},
		{"digits pass through", "5678", "5678"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validate.NormalizePhone(tt.input))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips diacritics", "José", "jose"},
		{"collapses whitespace", "  María   José  ", "maria jose"},
		{"case folds", "ANA GARCIA", "ana garcia"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validate.NormalizeName(tt.input))
		})
	}
}
