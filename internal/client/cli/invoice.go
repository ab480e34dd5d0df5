package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/services"
)

// listInvoices fetches both invoice streams for the given status filter and
// renders the active tab. A repeated call with the same status reuses the
// cached result; a different status re-fetches.
func (a *App) listInvoices(ctx context.Context, args []string) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	}
	status, err := models.ParseStatusFilter(raw)
	if err != nil {
		fmt.Println(err)
		return
	}

	if a.invoices == nil || a.invoices.Status != status {
		result, err := a.invoiceService.Query(ctx, status)
		if err != nil {
			a.invoices = nil
			a.renderError(err)
			return
		}
		a.invoices = &result
	}

	a.renderActiveTab(nil)
}

// switchTab changes which direction is displayed. It never re-fetches.
func (a *App) switchTab(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: tab <out|received>")
		return
	}
	switch args[0] {
	case "out", "outgoing":
		a.activeDir = "outgoing"
	case "received":
		a.activeDir = "received"
	default:
		fmt.Println("Usage: tab <out|received>")
		return
	}
	a.renderActiveTab(nil)
}

// filterOnDate renders the active tab narrowed to invoices issued on the
// given calendar day. The filter applies client-side to the cached result.
func (a *App) filterOnDate(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: ondate <YYYY-MM-DD>")
		return
	}
	day, err := time.Parse("2006-01-02", args[0])
	if err != nil {
		fmt.Println("Invalid date, expected YYYY-MM-DD")
		return
	}
	a.renderActiveTab(&day)
}

func (a *App) renderActiveTab(day *time.Time) {
	if a.invoices == nil {
		fmt.Println("No invoices loaded. Run 'invoices' first.")
		return
	}

	invoices := a.invoices.Outgoing
	if a.activeDir == "received" {
		invoices = a.invoices.Received
	}
	if day != nil {
		invoices = services.FilterByIssueDate(invoices, *day)
	}

	fmt.Printf("%s invoices (status: %s)\n", a.activeDir, a.invoices.Status)
	renderInvoices(os.Stdout, invoices)
}

// createInvoice walks through the create-invoice form: pick a business,
// set the due date, then add line items until an empty description.
func (a *App) createInvoice(ctx context.Context) {
	businesses, err := a.businessService.List(ctx)
	if err != nil {
		a.renderError(err)
		return
	}
	renderBusinesses(os.Stdout, businesses)
	if len(businesses) == 0 {
		return
	}

	idText, err := getSimpleText(a.reader, "Business ID to invoice from", os.Stdout)
	if err != nil {
		return
	}
	businessID, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		fmt.Println("Invalid business ID")
		return
	}

	dueText, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return
	}
	due, err := time.Parse("2006-01-02", dueText)
	if err != nil {
		fmt.Println("Invalid date, expected YYYY-MM-DD")
		return
	}

	draft := models.InvoiceDraft{
		BusinessID: businessID,
		DueDate:    services.FormatDueDate(due),
	}

	for {
		desc, err := getSimpleText(a.reader, "Item description (empty line to finish)", os.Stdout)
		if err != nil || desc == "" {
			break
		}
		qtyText, err := getSimpleText(a.reader, "Quantity", os.Stdout)
		if err != nil {
			return
		}
		qty, err := strconv.Atoi(qtyText)
		if err != nil {
			fmt.Println("Invalid quantity")
			continue
		}
		priceText, err := getSimpleText(a.reader, "Unit price", os.Stdout)
		if err != nil {
			return
		}
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			fmt.Println("Invalid unit price")
			continue
		}
		draft.Items = append(draft.Items, models.InvoiceItem{Description: desc, Quantity: qty, UnitPrice: price})
	}

	fmt.Printf("Subtotal: %.2f\n", draft.Subtotal())

	number, err := a.invoiceService.Create(ctx, draft)
	if err != nil {
		a.renderError(err)
		return
	}
	fmt.Printf("Invoice %s created\n", number)
	// The cached listing is stale now.
	a.invoices = nil
}
