package assignment_test

import (
	"testing"
	"time"

	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessCode(t *testing.T) {
	t.Run("generates eight readable characters", func(t *testing.T) {
		code, err := assignment.NewAccessCode(fixedNow, 72*time.Hour)

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Len(t, code.Value(), 8)
		assert.NotContains(t, code.Value(), "0")
		assert.NotContains(t, code.Value(), "O")
		assert.NotContains(t, code.Value(), "1")
		assert.NotContains(t, code.Value(), "I")
		assert.NotContains(t, code.Value(), "L")
		assert.False(t, code.IsUsed())
		assert.Equal(t, fixedNow.Add(72*time.Hour), code.ExpiresAt())
	})

	t.Run("codes differ between mints", func(t *testing.T) {
		first, err := assignment.NewAccessCode(fixedNow, time.Hour)
		require.NoError(t, err)
		second, err := assignment.NewAccessCode(fixedNow, time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, first.Value(), second.Value())
	})

	t.Run("non-positive ttl is rejected", func(t *testing.T) {
		_, err := assignment.NewAccessCode(fixedNow, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAccessCode_IsExpired(t *testing.T) {
	code, err := assignment.NewAccessCode(fixedNow, time.Hour)
	require.NoError(t, err)

	assert.False(t, code.IsExpired(fixedNow))
	assert.False(t, code.IsExpired(fixedNow.Add(time.Hour)))
	assert.True(t, code.IsExpired(fixedNow.Add(time.Hour+time.Second)))
}

func TestRestoreAccessCode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		code, err := assignment.RestoreAccessCode("XYZ23456", fixedNow, true)

		require.NoError(t, err)
		assert.Equal(t, "XYZ23456", code.Value())
		assert.True(t, code.IsUsed())
	})

	t.Run("empty value is rejected", func(t *testing.T) {
		_, err := assignment.RestoreAccessCode("", fixedNow, false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAccessCode_Validate_ZeroValue(t *testing.T) {
	var code assignment.AccessCode

	require.ErrorIs(t, code.Validate(), assignment.ErrAccessCodeIsNotConstructed)
}
