package render

import (
	"time"

	"github.com/healthmoney/healthmoney/internal/api/dto"
)

// Clock supplies the emission date embedded in the document. Injected so
// tests can render against a fixed date.
type Clock interface {
	Now() time.Time
}

// ProtocolGenerator supplies the display-only authorization protocol
// number embedded in the document. Injected so tests can assert golden
// output; the default implementation derives it from the clock's
// millisecond timestamp, so two renders of the same invoice differ.
type ProtocolGenerator interface {
	Next() string
}

// Renderer turns the transmission form of an invoice into the fixed
// DANFE-style markup document. Pure given its inputs plus the clock and
// protocol values; safe for concurrent use.
type Renderer interface {
	RenderHTML(data *dto.EmitInvoiceRequest) (string, error)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }
