package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPaymentLinkQuery(t *testing.T) {
	q, err := queries.NewGetPaymentLinkQuery(12)
	require.NoError(t, err)
	assert.NoError(t, q.Validate())
	assert.EqualValues(t, 12, q.OrderID())

	_, err = queries.NewGetPaymentLinkQuery(0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.ErrorIs(t, queries.GetPaymentLinkQuery{}.Validate(), queries.ErrGetPaymentLinkQueryIsNotConstructed)
}
