package domain_test

import (
	"testing"

	"github.com/DanielPopoola/checkout-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_SetEmail(t *testing.T) {
	t.Run("lowercases the address", func(t *testing.T) {
		c := &domain.Contact{}

		require.NoError(t, c.SetEmail("USER@Example.com"))
		assert.Equal(t, "user@example.com", c.Email())
	})

	t.Run("accepts the full sanitize alphabet", func(t *testing.T) {
		c := &domain.Contact{}

		require.NoError(t, c.SetEmail("first.last+tag_{x}@[sub-domain].example"))
	})

	t.Run("rejects characters the sanitizer strips", func(t *testing.T) {
		c := &domain.Contact{}

		err := c.SetEmail("bad<>email")

		validationErr, ok := domain.IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, []string{"Invalid email address"}, validationErr.Violations)
		assert.Empty(t, c.Email())
	})

	t.Run("rejects whitespace and non-ascii", func(t *testing.T) {
		c := &domain.Contact{}

		assert.Error(t, c.SetEmail("user @example.com"))
		assert.Error(t, c.SetEmail("jürgen@example.com"))
	})

	t.Run("keeps previous value on rejection", func(t *testing.T) {
		c := &domain.Contact{}
		require.NoError(t, c.SetEmail("ok@example.com"))

		assert.Error(t, c.SetEmail("not ok@example.com"))
		assert.Equal(t, "ok@example.com", c.Email())
	})
}

func TestContact_SetAddress(t *testing.T) {
	t.Run("splits at the last comma", func(t *testing.T) {
		c := &domain.Contact{}

		c.SetAddress("Main Street, 42")

		assert.Equal(t, "Main Street", c.Street)
		assert.Equal(t, "42", c.Number)
		assert.Equal(t, "Main Street, 42", c.Address())
	})

	t.Run("splits at the last space without a comma", func(t *testing.T) {
		c := &domain.Contact{}

		c.SetAddress("Main Street 42")

		assert.Equal(t, "Main Street", c.Street)
		assert.Equal(t, "42", c.Number)
	})

	t.Run("comma wins over later spaces", func(t *testing.T) {
		c := &domain.Contact{}

		c.SetAddress("Am Markt, 12 a")

		assert.Equal(t, "Am Markt", c.Street)
		assert.Equal(t, "12 a", c.Number)
	})

	t.Run("no delimiter leaves street and number empty", func(t *testing.T) {
		c := &domain.Contact{}

		c.SetAddress("NoDelimiter")

		assert.Empty(t, c.Street)
		assert.Empty(t, c.Number)
		assert.Equal(t, "NoDelimiter", c.Address())
	})

	t.Run("does not split when street or number is set", func(t *testing.T) {
		c := &domain.Contact{Street: "Elm Road"}

		c.SetAddress("Main Street 42")

		assert.Equal(t, "Elm Road", c.Street)
		assert.Empty(t, c.Number)
	})

	t.Run("derives at most once", func(t *testing.T) {
		c := &domain.Contact{}

		c.SetAddress("NoDelimiter")
		c.SetAddress("Main Street 42")

		assert.Empty(t, c.Street)
		assert.Empty(t, c.Number)
		assert.Equal(t, "Main Street 42", c.Address())
	})
}

func TestContact_Address(t *testing.T) {
	t.Run("synthesizes from street and number", func(t *testing.T) {
		c := &domain.Contact{Street: "Main Street", Number: "42"}

		assert.Equal(t, "Main Street 42", c.Address())
	})

	t.Run("does not cache the synthesized value", func(t *testing.T) {
		c := &domain.Contact{Street: "Main Street", Number: "42"}
		_ = c.Address()

		c.Number = "43"

		assert.Equal(t, "Main Street 43", c.Address())
	})
}

func TestContact_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&domain.Contact{FirstName: "Ada", LastName: "Lovelace"}).FullName())
	assert.Equal(t, " Lovelace", (&domain.Contact{LastName: "Lovelace"}).FullName())
}
