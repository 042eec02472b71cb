package pdfshift_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/healthmoney/healthmoney/internal/config"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
	"github.com/healthmoney/healthmoney/internal/pdfshift"
	"github.com/healthmoney/healthmoney/internal/testutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(mock *testutil.MockHTTPClient) pdfshift.Client {
	cfg := &config.Configuration{
		PDFShift: config.PDFShiftConfig{
			APIKey:   "sk_test_abc",
			Endpoint: "https://api.pdfshift.io/v3/convert/pdf",
		},
	}
	return pdfshift.NewClient(cfg, mock)
}

func TestConvertSendsExpectedRequest(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/v3/convert/pdf", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte("%PDF-1.4"),
	})
	client := newTestClient(mock)

	pdf, err := client.Convert(context.Background(), "<html><body>doc</body></html>")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)

	req := mock.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://api.pdfshift.io/v3/convert/pdf", req.URL)
	assert.Equal(t, "sk_test_abc", req.Headers["x-api-key"])

	var payload map[string]any
	require.NoError(t, jsoniter.Unmarshal(req.Body, &payload))
	assert.Equal(t, "<html><body>doc</body></html>", payload["source"])
	assert.Equal(t, false, payload["landscape"])
	assert.Equal(t, false, payload["use_print"])
}

func TestConvertFailsOnErrorStatus(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/v3/convert/pdf", testutil.MockResponse{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"error":"invalid api key"}`),
	})
	client := newTestClient(mock)

	_, err := client.Convert(context.Background(), "<html></html>")
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))

	// Single attempt, no retry
	assert.Len(t, mock.Requests(), 1)
}

func TestConvertFailsOnEmptyBody(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	mock.RegisterResponse("/v3/convert/pdf", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       nil,
	})
	client := newTestClient(mock)

	_, err := client.Convert(context.Background(), "<html></html>")
	require.Error(t, err)
	assert.True(t, ierr.IsHTTPClient(err))
}
