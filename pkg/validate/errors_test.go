package validate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weddingtools/rsvpkit/pkg/i18n"
	"github.com/weddingtools/rsvpkit/pkg/validate"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("add and has", func(t *testing.T) {
		t.Parallel()
		var errs validate.Errors
		errs.Add("email", validate.CodeEmail)
		errs.Add("companions", validate.CodeCompanionsMax, 2)

		assert.Len(t, errs, 2)
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("phone"))
	})

	t.Run("untranslated error reports its code", func(t *testing.T) {
		t.Parallel()
		var errs validate.Errors
		errs.Add("email", validate.CodeEmail)
		assert.EqualError(t, errs[0], "val_email")
	})

	t.Run("translate with mock fn", func(t *testing.T) {
		t.Parallel()
		var errs validate.Errors
		errs.Add("companions", validate.CodeCompanionsMax, 2)

		errs.Translate(func(key string, args ...any) string {
			return fmt.Sprintf("%s:%v", key, args)
		})

		assert.Equal(t, "val_companions_max:[2]", errs[0].Message)
	})

	t.Run("nil translate fn is no-op", func(t *testing.T) {
		t.Parallel()
		var errs validate.Errors
		errs.Add("email", validate.CodeEmail)
		errs.Translate(nil)
		assert.Empty(t, errs[0].Message)
	})

	t.Run("translates through the i18n resolver", func(t *testing.T) {
		t.Parallel()
		bundle, err := i18n.Default()
		require.NoError(t, err)
		r := i18n.NewResolver(bundle, i18n.WithLanguage("es"))

		var errs validate.Errors
		errs.Add("guest_code", validate.GuestCode("ab12"))
		errs.Add("companions", validate.CodeCompanionsMax, 2)
		errs.Translate(r.T)

		assert.Equal(t, "El código debe tener 4-12 letras mayúsculas o dígitos.", errs[0].Message)
		assert.Equal(t, "Tu invitación permite hasta 2 acompañante(s).", errs[1].Message)
	})
}
