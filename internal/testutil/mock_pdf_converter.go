package testutil

import (
	"context"
	"sync"

	"github.com/healthmoney/healthmoney/internal/pdfshift"
)

var _ pdfshift.Client = (*MockPDFConverter)(nil)

// MockPDFConverter implements pdfshift.Client. It records every markup
// payload it receives and returns a canned PDF byte stream.
type MockPDFConverter struct {
	mu     sync.Mutex
	inputs []string

	// Result is returned from Convert when Err is nil.
	Result []byte
	// Err, when set, fails every conversion.
	Err error
}

func NewMockPDFConverter() *MockPDFConverter {
	return &MockPDFConverter{
		Result: []byte("%PDF-1.4 mock"),
	}
}

func (m *MockPDFConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inputs = append(m.inputs, html)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// Inputs returns the markup payloads received so far, in order.
func (m *MockPDFConverter) Inputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.inputs...)
}

// CallCount returns how many conversions were attempted.
func (m *MockPDFConverter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}
