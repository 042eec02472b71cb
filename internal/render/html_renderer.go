package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/healthmoney/healthmoney/internal/api/dto"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
)

// accessKey is the fixed placeholder access key printed on every
// document. The generated document is an explicit simulation and never
// carries a real fiscal key.
const accessKey = "3523 1200 0000 0000 0000 5500 1000 0000 0112 3456 7890"

const danfeHTMLTemplate = `<!DOCTYPE html>
<html lang="pt-br">
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: 'Times New Roman', Times, serif; font-size: 10px; margin: 0; padding: 20px; }
    .container { width: 100%; max-width: 800px; margin: 0 auto; border: 1px solid black; position: relative; }
    .row { display: flex; border-bottom: 1px solid black; }
    .col { border-right: 1px solid black; padding: 2px 5px; display: flex; flex-direction: column; justify-content: center; }
    .col:last-child { border-right: none; }
    .label { font-size: 8px; font-weight: bold; text-transform: uppercase; color: #333; margin-bottom: 2px; }
    .value { font-size: 11px; font-weight: bold; color: #000; min-height: 12px; }
    .center { text-align: center; align-items: center; }
    .right { text-align: right; align-items: flex-end; }
    h1 { margin: 0; font-size: 18px; }
    table { width: 100%; border-collapse: collapse; margin-top: 5px; font-size: 10px; }
    th { border: 1px solid black; padding: 3px; background-color: #eee; font-size: 9px; }
    td { border: 1px solid black; padding: 3px; }
    .watermark {
      position: absolute; top: 40%; left: 50%; transform: translate(-50%, -50%) rotate(-45deg);
      font-size: 60px; color: rgba(0, 0, 0, 0.1); z-index: 0; white-space: nowrap; pointer-events: none;
    }
    .w-10 { width: 10%; } .w-15 { width: 15%; } .w-20 { width: 20%; } .w-30 { width: 30%; }
    .w-40 { width: 40%; } .w-45 { width: 45%; } .w-50 { width: 50%; } .w-60 { width: 60%; }
  </style>
</head>
<body>
  <div class="container">
    <div class="watermark">SEM VALOR FISCAL<br>HOMOLOGAÇÃO</div>

    <div class="row" style="height: 100px;">
      <div class="col w-40">
        <div class="value center" style="font-size: 14px;">HEALTHMONEY CLÍNICA</div>
        <div class="center" style="font-size: 9px;">Av. da Universidade, 123 - Campinas - SP</div>
      </div>
      <div class="col w-15 center">
        <h1 style="font-family: Arial Black;">DANFE</h1>
        <span class="label">SAÍDA - Nº 001</span>
      </div>
      <div class="col w-45">
        <img src="{{.BarcodeURL}}" style="width: 100%; height: 35px;">
        <span class="label">CHAVE DE ACESSO</span>
        <span class="value" style="font-size: 9px;">{{.AccessKey}}</span>
      </div>
    </div>

    <div style="background-color: #ddd; padding: 2px; font-weight: bold; border-bottom: 1px solid black; font-size: 9px;">DESTINATÁRIO / REMETENTE</div>
    <div class="row">
      <div class="col w-60"><span class="label">NOME / RAZÃO SOCIAL</span><span class="value">{{.Data.CustomerName}}</span></div>
      <div class="col w-30"><span class="label">CNPJ / CPF</span><span class="value">{{.Data.TaxID}}</span></div>
      <div class="col w-10"><span class="label">EMISSÃO</span><span class="value center">{{.IssueDate}}</span></div>
    </div>
    <div class="row">
      <div class="col w-50"><span class="label">ENDEREÇO</span><span class="value">{{.Data.FullAddress}}</span></div>
      <div class="col w-30"><span class="label">BAIRRO / DISTRITO</span><span class="value">{{.Data.Neighborhood}}</span></div>
      <div class="col w-20"><span class="label">MUNICÍPIO / UF</span><span class="value center">{{.Data.CityState}}</span></div>
    </div>

    <div style="background-color: #ddd; padding: 2px; font-weight: bold; border-bottom: 1px solid black; font-size: 9px; border-top: 1px solid black;">CÁLCULO DO IMPOSTO</div>
    <div class="row">
      <div class="col w-20"><span class="label">BASE CÁLC. ICMS</span><span class="value right">0,00</span></div>
      <div class="col w-20"><span class="label">VALOR FRETE</span><span class="value right">0,00</span></div>
      <div class="col w-20"><span class="label">DESCONTO</span><span class="value right">0,00</span></div>
      <div class="col w-20"><span class="label">OUTRAS DESP</span><span class="value right">0,00</span></div>
      <div class="col w-20"><span class="label">TOTAL NOTA</span><span class="value right">{{.Data.TotalAmount}}</span></div>
    </div>

    <div style="background-color: #ddd; padding: 2px; font-weight: bold; font-size: 9px; border-top: 1px solid black; margin-top: 5px;">DADOS DO PRODUTO / SERVIÇO</div>
    <table>
      <thead>
        <tr>
          <th style="width: 10%;">CÓD</th>
          <th style="width: 40%;">DESCRIÇÃO</th>
          <th style="width: 5%;">UN</th>
          <th style="width: 5%;">QTD</th>
          <th style="width: 15%;">VLR. UNIT</th>
          <th style="width: 15%;">VLR. TOTAL</th>
        </tr>
      </thead>
      <tbody>
        {{range .Data.Items}}<tr>
          <td class="center">{{.Code}}</td>
          <td>{{.Description}}</td>
          <td class="center">UN</td>
          <td class="center">{{.Quantity}}</td>
          <td class="right">{{.UnitPrice}}</td>
          <td class="right">{{.LineTotal}}</td>
        </tr>
        {{end}}<tr style="height: 100px;"><td colspan="6">&nbsp;</td></tr>
      </tbody>
    </table>

    <div style="border: 1px solid black; margin-top: 5px; padding: 5px;">
      <span class="label">INFORMAÇÕES COMPLEMENTARES</span><br>
      Protocolo: {{.Protocol}}
    </div>
  </div>
</body>
</html>
`

type documentView struct {
	Data       *dto.EmitInvoiceRequest
	IssueDate  string
	AccessKey  string
	BarcodeURL string
	Protocol   string
}

// HTMLRenderer renders the fixed DANFE layout. User-supplied text is
// escaped by html/template for the markup grammar.
type HTMLRenderer struct {
	tpl       *template.Template
	clock     Clock
	protocols ProtocolGenerator
}

// NewRenderer creates an HTMLRenderer with the given clock and protocol
// generator.
func NewRenderer(clock Clock, protocols ProtocolGenerator) Renderer {
	return &HTMLRenderer{
		tpl:       template.Must(template.New("danfe").Parse(danfeHTMLTemplate)),
		clock:     clock,
		protocols: protocols,
	}
}

func (r *HTMLRenderer) RenderHTML(data *dto.EmitInvoiceRequest) (string, error) {
	if data == nil {
		data = &dto.EmitInvoiceRequest{}
	}

	view := documentView{
		Data:       data,
		IssueDate:  r.clock.Now().Format("2006-01-02"),
		AccessKey:  accessKey,
		BarcodeURL: barcodeURL(accessKey),
		Protocol:   r.protocols.Next(),
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return "", ierr.WithError(err).
			WithHint("failed to render invoice document").
			Mark(ierr.ErrSystem)
	}
	return buf.String(), nil
}

func barcodeURL(key string) string {
	return "https://bwipjs-api.metafloor.com/?bcid=code128&text=" + url.QueryEscape(key) + "&scale=1&height=10"
}

// TimestampProtocolGenerator derives protocol numbers from the clock's
// millisecond timestamp, matching the original emission format.
type TimestampProtocolGenerator struct {
	clock Clock
}

func NewTimestampProtocolGenerator(clock Clock) ProtocolGenerator {
	return &TimestampProtocolGenerator{clock: clock}
}

func (g *TimestampProtocolGenerator) Next() string {
	return fmt.Sprintf("1352300000%d", g.clock.Now().UnixMilli())
}
