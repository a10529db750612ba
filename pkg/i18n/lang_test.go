package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weddingtools/rsvpkit/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []string{"en", "es", "ro"}

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"exact match", "es", "es"},
		{"quality ordering", "es-ES,es;q=0.9,en;q=0.8", "es"},
		{"region variant matches base", "ro-RO", "ro"},
		{"no match falls back to first available", "fr-FR,fr;q=0.9", "en"},
		{"empty header falls back to first available", "", "en"},
		{"garbage header falls back to first available", ";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.ParseAcceptLanguage(tt.header, available))
		})
	}

	t.Run("empty available returns empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, i18n.ParseAcceptLanguage("en", nil))
	})
}

func TestResolveLang(t *testing.T) {
	t.Parallel()

	bundle, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithDictionary("en", map[string]string{"a": "a"}),
		i18n.WithDictionary("es", map[string]string{"a": "a"}),
		i18n.WithDictionary("ro", map[string]string{"a": "a"}),
	)
	require.NoError(t, err)

	t.Run("payload language wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ro", i18n.ResolveLang("ro", "es", "en", bundle))
	})

	t.Run("guest preference next", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "es", i18n.ResolveLang("", "es", "ro", bundle))
	})

	t.Run("accept-language header next", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ro", i18n.ResolveLang("", "", "ro-RO,ro;q=0.9", bundle))
	})

	t.Run("falls back to bundle default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "en", i18n.ResolveLang("de", "fr", "", bundle))
	})
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "English (EN)", i18n.DisplayName("en"))
	assert.Equal(t, "Español (ES)", i18n.DisplayName("ES"))
	assert.Equal(t, "Română (RO)", i18n.DisplayName("ro"))
	assert.Equal(t, "fr", i18n.DisplayName("fr"))
}

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", i18n.NormalizeTag(" EN "))
	assert.Equal(t, "es", i18n.NormalizeTag("es"))
	assert.Empty(t, i18n.NormalizeTag("  "))
}
