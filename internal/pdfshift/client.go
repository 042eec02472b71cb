package pdfshift

import (
	"context"
	"net/http"

	"github.com/healthmoney/healthmoney/internal/config"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/httpclient"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client converts rendered markup into a PDF byte stream using the
// external PDFShift conversion service. It holds no invoice knowledge;
// it is a protocol adapter and is substitutable by a test double.
type Client interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// conversionRequest is the wire payload of the conversion endpoint.
type conversionRequest struct {
	Source    string `json:"source"`
	Landscape bool   `json:"landscape"`
	UsePrint  bool   `json:"use_print"`
}

type client struct {
	http     httpclient.Client
	endpoint string
	apiKey   string
}

// NewClient creates a conversion client against the configured endpoint.
// The service credential is resolved from configuration at startup.
func NewClient(cfg *config.Configuration, http httpclient.Client) Client {
	return &client{
		http:     http,
		endpoint: cfg.PDFShift.Endpoint,
		apiKey:   cfg.PDFShift.APIKey,
	}
}

// Convert sends the markup for rasterization. Single attempt, no retry:
// any transport error, non-2xx status, or empty body is a conversion
// failure.
func (c *client) Convert(ctx context.Context, html string) ([]byte, error) {
	body, err := json.Marshal(conversionRequest{
		Source:    html,
		Landscape: false,
		UsePrint:  false,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to encode conversion payload").
			Mark(ierr.ErrSystem)
	}

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method: http.MethodPost,
		URL:    c.endpoint,
		Headers: map[string]string{
			"x-api-key": c.apiKey,
		},
		Body: body,
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("pdf conversion service call failed").
			Mark(ierr.ErrHTTPClient)
	}

	if len(resp.Body) == 0 {
		return nil, ierr.NewError("pdf conversion returned an empty body").
			WithHint("pdf conversion service returned no document").
			Mark(ierr.ErrHTTPClient)
	}

	return resp.Body, nil
}
