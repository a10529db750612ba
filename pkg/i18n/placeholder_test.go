package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weddingtools/rsvpkit/pkg/i18n"
)

func TestReplacePositional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Hola {0}",
			args:     []any{"Ana"},
			want:     "Hola Ana",
		},
		{
			name:     "multiple placeholders",
			template: "Hi {0}, you may bring {1} companions",
			args:     []any{"Alex", 2},
			want:     "Hi Alex, you may bring 2 companions",
		},
		{
			name:     "repeated index",
			template: "{0} and {0}",
			args:     []any{"x"},
			want:     "x and x",
		},
		{
			name:     "no args leaves template unchanged",
			template: "Hola {0}",
			want:     "Hola {0}",
		},
		{
			name:     "unsupplied index stays literal",
			template: "Hi {0}, table {1}",
			args:     []any{"Alex"},
			want:     "Hi Alex, table {1}",
		},
		{
			name:     "non-numeric placeholder untouched",
			template: "Hola {name}",
			args:     []any{"Ana"},
			want:     "Hola {name}",
		},
		{
			name:     "unterminated brace untouched",
			template: "Hola {0",
			args:     []any{"Ana"},
			want:     "Hola {0",
		},
		{
			name:     "no placeholders",
			template: "Bienvenido",
			args:     []any{"Ana"},
			want:     "Bienvenido",
		},
		{
			name:     "non-string argument",
			template: "{0} días",
			args:     []any{7},
			want:     "7 días",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ReplacePositional(tt.template, tt.args...))
		})
	}
}
