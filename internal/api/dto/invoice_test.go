package dto

import (
	"os"
	"testing"

	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/testutil"
	"github.com/healthmoney/healthmoney/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	validator.NewValidator()
	os.Exit(m.Run())
}

func validEmitRequest() EmitInvoiceRequest {
	return EmitInvoiceRequest{
		CustomerName: "Maria Silva",
		TaxID:        "123.456.789-00",
		FullAddress:  "Rua das Flores, 100",
		Neighborhood: "Centro",
		CityState:    "Campinas - SP",
		TotalAmount:  "350.00",
		Items: []LineItemData{
			{Code: "C1", Description: "Consulta clínica", Quantity: "1", UnitPrice: "350.00", LineTotal: "350.00"},
			{Code: "C2", Description: "Retorno", Quantity: "2", UnitPrice: "0.10", LineTotal: "0.20"},
		},
	}
}

func TestEmitInvoiceRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validEmitRequest()
		require.NoError(t, req.Validate())
	})

	t.Run("missing customer name", func(t *testing.T) {
		req := validEmitRequest()
		req.CustomerName = ""
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("malformed total amount", func(t *testing.T) {
		req := validEmitRequest()
		req.TotalAmount = "12,34"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("malformed item amount", func(t *testing.T) {
		req := validEmitRequest()
		req.Items[1].UnitPrice = "abc"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("empty amounts are allowed", func(t *testing.T) {
		req := validEmitRequest()
		req.TotalAmount = ""
		req.Items[0].Quantity = ""
		require.NoError(t, req.Validate())
	})
}

func TestToInvoice(t *testing.T) {
	ctx := testutil.SetupContext()
	req := validEmitRequest()

	inv, err := req.ToInvoice(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, inv.ID)
	assert.NotEmpty(t, inv.InvoiceNumber)
	assert.Equal(t, "Maria Silva", inv.CustomerName)
	assert.True(t, inv.TotalAmount.Equal(decimal.RequireFromString("350.00")))

	require.Len(t, inv.LineItems, 2)
	for idx, item := range inv.LineItems {
		assert.Equal(t, inv.ID, item.InvoiceID)
		assert.Equal(t, idx, item.DisplayOrder)
	}
	assert.True(t, inv.LineItems[1].UnitPrice.Equal(decimal.RequireFromString("0.10")))
	assert.True(t, inv.LineItems[1].LineTotal.Equal(decimal.RequireFromString("0.20")))
}

func TestToInvoiceEmptyAmountDefaultsToZero(t *testing.T) {
	ctx := testutil.SetupContext()
	req := validEmitRequest()
	req.TotalAmount = ""

	inv, err := req.ToInvoice(ctx)
	require.NoError(t, err)
	assert.True(t, inv.TotalAmount.IsZero())
}

func TestInvoiceDataRoundTrip(t *testing.T) {
	ctx := testutil.SetupContext()
	req := validEmitRequest()

	inv, err := req.ToInvoice(ctx)
	require.NoError(t, err)

	data := NewInvoiceDataFromInvoice(inv)

	assert.Equal(t, req.CustomerName, data.CustomerName)
	assert.Equal(t, req.TaxID, data.TaxID)
	assert.Equal(t, req.FullAddress, data.FullAddress)
	assert.Equal(t, req.Neighborhood, data.Neighborhood)
	assert.Equal(t, req.CityState, data.CityState)

	// String forms may be normalized, but the numeric values survive
	assert.True(t, decimal.RequireFromString(data.TotalAmount).Equal(decimal.RequireFromString(req.TotalAmount)))
	require.Len(t, data.Items, len(req.Items))
	for i := range req.Items {
		assert.Equal(t, req.Items[i].Code, data.Items[i].Code)
		assert.Equal(t, req.Items[i].Description, data.Items[i].Description)
		assert.True(t, decimal.RequireFromString(data.Items[i].Quantity).Equal(decimal.RequireFromString(req.Items[i].Quantity)))
		assert.True(t, decimal.RequireFromString(data.Items[i].UnitPrice).Equal(decimal.RequireFromString(req.Items[i].UnitPrice)))
		assert.True(t, decimal.RequireFromString(data.Items[i].LineTotal).Equal(decimal.RequireFromString(req.Items[i].LineTotal)))
	}
}

func TestInvoiceDataFromInvoiceNilLineItems(t *testing.T) {
	ctx := testutil.SetupContext()
	req := validEmitRequest()
	req.Items = nil

	inv, err := req.ToInvoice(ctx)
	require.NoError(t, err)
	inv.LineItems = nil

	data := NewInvoiceDataFromInvoice(inv)
	assert.NotNil(t, data.Items)
	assert.Empty(t, data.Items)
}

func TestDownloadFilenames(t *testing.T) {
	assert.Equal(t, "nota_fiscal_Maria_Silva.pdf", FilenameForEmission("Maria Silva"))
	assert.Equal(t, "nota_fiscal_Ana.pdf", FilenameForEmission("Ana"))
	assert.Equal(t, "nota_inv_123.pdf", FilenameForRedownload("inv_123"))
}
