package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/invotrack/invocli/internal/client/api"
	"github.com/invotrack/invocli/internal/client/models"
	"github.com/invotrack/invocli/internal/client/services"
	"github.com/invotrack/invocli/internal/common"
)

// renderError prints a user-facing message for err. Unauthorized errors get
// a distinct re-login affordance instead of a generic failure line.
func (a *App) renderError(err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Println("Unauthorized. Please log in again with 'login'.")
	case errors.Is(err, common.ErrNoSession):
		fmt.Println("You are not logged in. Use 'login' or 'signup' first.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Println("Server unavailable. Please try again later.")
	default:
		var ferr services.FieldErrors
		var verr *api.ValidationError
		if errors.As(err, &ferr) {
			for field, msg := range ferr {
				fmt.Printf("  %s: %s\n", field, msg)
			}
			return
		}
		if errors.As(err, &verr) {
			fmt.Printf("Validation error: %s\n", verr.Message)
			return
		}
		fmt.Printf("Error: %s\n", err)
	}
}

func renderInvoices(w io.Writer, invoices []models.Invoice) {
	if len(invoices) == 0 {
		fmt.Fprintln(w, "No invoices found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tCOUNTERPARTY\tAMOUNT\tISSUED\tDUE\tSTATUS")
	for _, inv := range invoices {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\t%s\n",
			inv.InvoiceNumber,
			orNA(inv.Counterparty()),
			inv.Amount,
			formatDay(inv.DateIssued.Time),
			formatDay(inv.DueDate.Time),
			inv.Status,
		)
	}
	tw.Flush()
}

func renderBusinesses(w io.Writer, businesses []models.Business) {
	if len(businesses) == 0 {
		fmt.Fprintln(w, "No businesses registered yet. Use 'addbusiness' to add one.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE")
	for _, b := range businesses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", b.ID, b.Name, b.Email, b.PhoneNumber)
	}
	tw.Flush()
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
