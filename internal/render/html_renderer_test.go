package render

import (
	"strings"
	"testing"
	"time"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type staticProtocol struct {
	p string
}

func (g staticProtocol) Next() string { return g.p }

func newTestRenderer(t time.Time, protocol string) Renderer {
	return NewRenderer(fixedClock{t: t}, staticProtocol{p: protocol})
}

func TestRenderHTMLBasicDocument(t *testing.T) {
	emitted := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	r := newTestRenderer(emitted, "13523000001741948200000")

	html, err := r.RenderHTML(&dto.EmitInvoiceRequest{
		CustomerName: "Maria Silva",
		TaxID:        "123.456.789-00",
		FullAddress:  "Rua das Flores, 100",
		Neighborhood: "Centro",
		CityState:    "Campinas - SP",
		TotalAmount:  "350.00",
		Items: []dto.LineItemData{
			{Code: "C1", Description: "Consulta clínica", Quantity: "1", UnitPrice: "350.00", LineTotal: "350.00"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Maria Silva")
	assert.Contains(t, html, "123.456.789-00")
	assert.Contains(t, html, "Rua das Flores, 100")
	assert.Contains(t, html, "Centro")
	assert.Contains(t, html, "Campinas - SP")
	assert.Contains(t, html, "350.00")
	assert.Contains(t, html, "Consulta clínica")

	// Injected date and protocol
	assert.Contains(t, html, "2025-03-14")
	assert.Contains(t, html, "Protocolo: 13523000001741948200000")

	// Fixed document chrome
	assert.Contains(t, html, "SEM VALOR FISCAL")
	assert.Contains(t, html, "HOMOLOGAÇÃO")
	assert.Contains(t, html, "HEALTHMONEY CLÍNICA")
	assert.Contains(t, html, "3523 1200 0000 0000 0000 5500 1000 0000 0112 3456 7890")
}

func TestRenderHTMLIsDeterministicGivenClockAndProtocol(t *testing.T) {
	emitted := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	r := newTestRenderer(emitted, "1352300000123")

	data := &dto.EmitInvoiceRequest{
		CustomerName: "Ana",
		TotalAmount:  "10",
	}

	first, err := r.RenderHTML(data)
	require.NoError(t, err)
	second, err := r.RenderHTML(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHTMLItemRowsKeepOrder(t *testing.T) {
	r := newTestRenderer(time.Now(), "1")

	html, err := r.RenderHTML(&dto.EmitInvoiceRequest{
		CustomerName: "Ana",
		Items: []dto.LineItemData{
			{Code: "A", Description: "Primeira consulta"},
			{Code: "B", Description: "Retorno"},
			{Code: "C", Description: "Exame"},
		},
	})
	require.NoError(t, err)

	first := strings.Index(html, "Primeira consulta")
	second := strings.Index(html, "Retorno")
	third := strings.Index(html, "Exame")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	// One fixed unit label per item row
	assert.Equal(t, 3, strings.Count(html, `<td class="center">UN</td>`))

	// Trailing spacer row closes the table
	assert.Contains(t, html, `<tr style="height: 100px;"><td colspan="6">&nbsp;</td></tr>`)
}

func TestRenderHTMLEmptyItems(t *testing.T) {
	r := newTestRenderer(time.Now(), "1")

	html, err := r.RenderHTML(&dto.EmitInvoiceRequest{CustomerName: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, 0, strings.Count(html, `<td class="center">UN</td>`))
	assert.Contains(t, html, `<tr style="height: 100px;"><td colspan="6">&nbsp;</td></tr>`)
}

func TestRenderHTMLNilDataRendersEmptyDocument(t *testing.T) {
	r := newTestRenderer(time.Now(), "1")

	html, err := r.RenderHTML(nil)
	require.NoError(t, err)
	assert.Contains(t, html, "DANFE")
}

func TestRenderHTMLEscapesUserText(t *testing.T) {
	r := newTestRenderer(time.Now(), "1")

	html, err := r.RenderHTML(&dto.EmitInvoiceRequest{
		CustomerName: `<script>alert("x")</script>`,
		Items: []dto.LineItemData{
			{Description: `<img src=x onerror="steal()">`},
		},
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
	assert.NotContains(t, html, `<img src=x`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBarcodeURLEscapesAccessKey(t *testing.T) {
	u := barcodeURL("3523 1200")

	assert.Contains(t, u, "bwipjs-api.metafloor.com")
	assert.Contains(t, u, "text=3523+1200")
	assert.NotContains(t, u, "text=3523 1200")
}

func TestTimestampProtocolGenerator(t *testing.T) {
	emitted := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	g := NewTimestampProtocolGenerator(fixedClock{t: emitted})

	assert.Equal(t, "13523000001741948200000", g.Next())
}
