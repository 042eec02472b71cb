package testutil

import (
	"context"
	"sync"

	"github.com/healthmoney/healthmoney/internal/domain/invoice"
	ierr "github.com/healthmoney/healthmoney/internal/errors"
)

// InMemoryInvoiceStore implements invoice.Repository
type InMemoryInvoiceStore struct {
	mu       sync.RWMutex
	invoices []*invoice.Invoice
	byID     map[string]*invoice.Invoice

	// CreateErr, when set, is returned by CreateWithLineItems. Used to
	// exercise best-effort persistence paths.
	CreateErr error
}

// NewInMemoryInvoiceStore creates a new in-memory invoice store
func NewInMemoryInvoiceStore() *InMemoryInvoiceStore {
	return &InMemoryInvoiceStore{
		byID: make(map[string]*invoice.Invoice),
	}
}

func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	if inv == nil {
		return nil
	}

	out := *inv
	out.LineItems = make([]*invoice.LineItem, len(inv.LineItems))
	for i, item := range inv.LineItems {
		itemCopy := *item
		out.LineItems[i] = &itemCopy
	}
	return &out
}

func (s *InMemoryInvoiceStore) CreateWithLineItems(ctx context.Context, inv *invoice.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CreateErr != nil {
		return s.CreateErr
	}
	if inv == nil {
		return ierr.NewError("invoice cannot be nil").
			Mark(ierr.ErrValidation)
	}

	stored := copyInvoice(inv)
	s.invoices = append(s.invoices, stored)
	s.byID[stored.ID] = stored
	return nil
}

func (s *InMemoryInvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.byID[id]
	if !ok {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyInvoice(inv), nil
}

func (s *InMemoryInvoiceStore) List(ctx context.Context) ([]*invoice.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*invoice.Invoice, len(s.invoices))
	for i, inv := range s.invoices {
		out[i] = copyInvoice(inv)
	}
	return out, nil
}

// Count returns the number of stored invoices.
func (s *InMemoryInvoiceStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.invoices)
}

// Clear removes all stored invoices
func (s *InMemoryInvoiceStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = nil
	s.byID = make(map[string]*invoice.Invoice)
	s.CreateErr = nil
}
