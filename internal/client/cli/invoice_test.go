package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/services"
)

func newInvoiceApp(f *fakeInvoices) *App {
	return &App{
		invoiceService: f,
		reader:         bufio.NewReader(strings.NewReader("")),
		activeDir:      "outgoing",
	}
}

func TestListInvoices_SameStatusReusesCache(t *testing.T) {
	f := &fakeInvoices{result: services.QueryResult{
		Outgoing: []models.Invoice{{InvoiceNumber: "INV-001"}},
	}}
	a := newInvoiceApp(f)

	a.listInvoices(context.Background(), []string{"pending"})
	a.listInvoices(context.Background(), []string{"pending"})

	if len(f.queries) != 1 {
		t.Fatalf("same status must not re-fetch, got %d queries", len(f.queries))
	}
}

func TestListInvoices_StatusChangeRefetches(t *testing.T) {
	f := &fakeInvoices{}
	a := newInvoiceApp(f)

	a.listInvoices(context.Background(), []string{"pending"})
	a.listInvoices(context.Background(), []string{"paid"})

	if len(f.queries) != 2 {
		t.Fatalf("status change must re-fetch, got %d queries", len(f.queries))
	}
	if f.queries[0] != models.FilterPending || f.queries[1] != models.FilterPaid {
		t.Fatalf("unexpected statuses: %v", f.queries)
	}
}

func TestListInvoices_InvalidStatusRejectedLocally(t *testing.T) {
	f := &fakeInvoices{}
	a := newInvoiceApp(f)

	a.listInvoices(context.Background(), []string{"archived"})

	if len(f.queries) != 0 {
		t.Fatal("invalid status must not reach the service")
	}
}

func TestSwitchTab_NeverRefetches(t *testing.T) {
	f := &fakeInvoices{result: services.QueryResult{
		Outgoing: []models.Invoice{{InvoiceNumber: "INV-001"}},
		Received: []models.Invoice{{InvoiceNumber: "INV-002"}},
	}}
	a := newInvoiceApp(f)

	a.listInvoices(context.Background(), nil)
	before := len(f.queries)

	a.switchTab([]string{"received"})
	a.switchTab([]string{"out"})

	if len(f.queries) != before {
		t.Fatal("switching tabs must not re-fetch")
	}
	if a.activeDir != "outgoing" {
		t.Fatalf("unexpected active tab: %q", a.activeDir)
	}
}

func TestListInvoices_ErrorClearsCache(t *testing.T) {
	f := &fakeInvoices{result: services.QueryResult{
		Outgoing: []models.Invoice{{InvoiceNumber: "INV-001"}},
	}}
	a := newInvoiceApp(f)
	a.listInvoices(context.Background(), nil)

	f.err = context.DeadlineExceeded
	a.listInvoices(context.Background(), []string{"paid"})

	if a.invoices != nil {
		t.Fatal("a failed query must not leave a stale cache")
	}
}
