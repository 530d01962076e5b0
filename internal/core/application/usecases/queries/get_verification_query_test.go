package queries_test

import (
	"testing"

	"cargopay/internal/core/application/usecases/queries"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetVerificationQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetVerificationQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.VerificationID())
}

func TestNewGetVerificationQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetVerificationQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetVerificationQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetVerificationQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetVerificationQueryIsNotConstructed)
}
