package invoice

import (
	"strings"
	"testing"

	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceAssignsIdentity(t *testing.T) {
	inv := NewInvoice()

	assert.True(t, strings.HasPrefix(inv.ID, "inv_"))
	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "NF-"))
	assert.False(t, inv.CreatedAt.IsZero())

	other := NewInvoice()
	assert.NotEqual(t, inv.ID, other.ID)
}

func TestLineItemTotal(t *testing.T) {
	inv := NewInvoice()
	inv.LineItems = []*LineItem{
		{LineTotal: decimal.RequireFromString("350.00")},
		{LineTotal: decimal.RequireFromString("0.20")},
	}

	assert.True(t, inv.LineItemTotal().Equal(decimal.RequireFromString("350.20")))
}

func TestLineItemTotalEmpty(t *testing.T) {
	inv := NewInvoice()
	assert.True(t, inv.LineItemTotal().IsZero())
}

func TestInvoiceValidate(t *testing.T) {
	inv := NewInvoice()
	inv.CustomerName = "Maria Silva"
	inv.TotalAmount = decimal.RequireFromString("350.00")
	require.NoError(t, inv.Validate())

	t.Run("missing customer name", func(t *testing.T) {
		bad := NewInvoice()
		bad.TotalAmount = decimal.RequireFromString("10")
		err := bad.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("negative total", func(t *testing.T) {
		bad := NewInvoice()
		bad.CustomerName = "Maria Silva"
		bad.TotalAmount = decimal.RequireFromString("-1")
		err := bad.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("total need not match line item sum", func(t *testing.T) {
		inv := NewInvoice()
		inv.CustomerName = "Maria Silva"
		inv.TotalAmount = decimal.RequireFromString("999.99")
		inv.LineItems = []*LineItem{
			{LineTotal: decimal.RequireFromString("350.00")},
		}
		assert.NoError(t, inv.Validate())
	})

	t.Run("invalid line item", func(t *testing.T) {
		inv := NewInvoice()
		inv.CustomerName = "Maria Silva"
		inv.LineItems = []*LineItem{
			{Quantity: decimal.RequireFromString("-1")},
		}
		err := inv.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}
