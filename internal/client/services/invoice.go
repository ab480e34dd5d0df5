package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// QueryResult holds both invoice streams for one status filter. Switching
// the displayed direction reads from here without re-fetching; changing the
// status filter requires a new Query.
type QueryResult struct {
	Status   models.StatusFilter
	Outgoing []models.Invoice
	Received []models.Invoice
}

// InvoiceService queries and creates invoices.
type InvoiceService interface {
	// Query fetches outgoing and received invoices concurrently for the
	// given status filter. The fetch is fail-fast: on the first error the
	// other request is cancelled and no partial result is returned.
	Query(ctx context.Context, status models.StatusFilter) (QueryResult, error)

	// Create submits an invoice draft and returns the server-assigned
	// invoice number.
	Create(ctx context.Context, draft models.InvoiceDraft) (string, error)
}

type invoiceService struct {
	client api.Client
}

func NewInvoiceService(client api.Client) InvoiceService {
	return &invoiceService{client: client}
}

func (s *invoiceService) Query(ctx context.Context, status models.StatusFilter) (QueryResult, error) {
	result := QueryResult{Status: status}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invoices, err := s.client.ListInvoices(gctx, models.DirectionOutgoing, status)
		if err != nil {
			return err
		}
		result.Outgoing = invoices
		return nil
	})
	g.Go(func() error {
		invoices, err := s.client.ListInvoices(gctx, models.DirectionReceived, status)
		if err != nil {
			return err
		}
		result.Received = invoices
		return nil
	})

	if err := g.Wait(); err != nil {
		return QueryResult{Status: status}, fmt.Errorf("listing invoices: %w", err)
	}
	return result, nil
}

func (s *invoiceService) Create(ctx context.Context, draft models.InvoiceDraft) (string, error) {
	errs := FieldErrors{}
	if draft.BusinessID == 0 {
		errs["business_id"] = "business is required"
	}
	if draft.DueDate == "" {
		errs["due_date"] = "due date is required"
	}
	if len(draft.Items) == 0 {
		errs["items"] = "at least one item is required"
	}
	for i, item := range draft.Items {
		if strings.TrimSpace(item.Description) == "" {
			errs[fmt.Sprintf("items[%d].description", i)] = "description is required"
		}
		if item.Quantity < 1 {
			errs[fmt.Sprintf("items[%d].quantity", i)] = "quantity must be at least 1"
		}
		if item.UnitPrice <= 0 {
			errs[fmt.Sprintf("items[%d].unit_price", i)] = "unit price must be positive"
		}
	}
	if len(errs) > 0 {
		return "", errs
	}

	number, err := s.client.CreateInvoice(ctx, draft)
	if err != nil {
		return "", fmt.Errorf("creating invoice: %w", err)
	}
	return number, nil
}

// FormatDueDate renders a due date the way the create endpoint expects it:
// dd-mm-yyyy.
func FormatDueDate(t time.Time) string {
	return t.Format("02-01-2006")
}

// FilterByIssueDate keeps invoices issued on the same calendar day as day,
// regardless of time-of-day. It is a client-side refinement of an already
// fetched list, not a range filter.
func FilterByIssueDate(invoices []models.Invoice, day time.Time) []models.Invoice {
	filtered := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.DateIssued.SameDay(day) {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}
