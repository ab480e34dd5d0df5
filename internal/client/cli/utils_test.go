package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/invotrack/invocli/internal/client/models"
)

func TestRenderInvoices_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderInvoices(&buf, nil)
	if !strings.Contains(buf.String(), "No invoices found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderInvoices_Table(t *testing.T) {
	var buf bytes.Buffer
	renderInvoices(&buf, []models.Invoice{{
		InvoiceNumber: "INV-001",
		Recipient:     "Acme Ltd",
		Amount:        1500,
		DateIssued:    models.Timestamp{Time: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		Status:        models.StatusPending,
		Direction:     models.DirectionOutgoing,
	}})

	out := buf.String()
	for _, want := range []string{"INV-001", "Acme Ltd", "1500.00", "01 Jun 2025", "pending"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderInvoices_MissingCounterpartyShowsNA(t *testing.T) {
	var buf bytes.Buffer
	renderInvoices(&buf, []models.Invoice{{InvoiceNumber: "INV-002"}})
	if !strings.Contains(buf.String(), "N/A") {
		t.Fatalf("expected N/A for missing counterparty:\n%s", buf.String())
	}
}

func TestRenderBusinesses_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderBusinesses(&buf, nil)
	if !strings.Contains(buf.String(), "addbusiness") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
