package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// InvoiceStatus is the server-assigned lifecycle state of an invoice.
// Values outside the known set are preserved verbatim.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pending"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
	StatusOverdue   InvoiceStatus = "overdue"
)

// Direction tells which endpoint produced an invoice. It is not a field on
// the wire entity; the client assigns it after fetching.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionReceived Direction = "received"
)

// Timestamp wraps time.Time to tolerate the two date encodings the API is
// known to emit: RFC 3339 timestamps and bare "2006-01-02" dates.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported date format: %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// SameDay reports whether t and other fall on the same calendar date,
// ignoring time of day.
func (t Timestamp) SameDay(other time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Invoice is a read-only view of an invoice as returned by the listing
// endpoints. Recipient is set on outgoing invoices, Sender on received ones.
type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	Recipient     string        `json:"recipient,omitempty"`
	Sender        string        `json:"sender,omitempty"`
	Amount        float64       `json:"amount"`
	DateIssued    Timestamp     `json:"date_issued"`
	DueDate       Timestamp     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	Direction     Direction     `json:"-"`
}

// Counterparty returns whoever is on the other side of the invoice.
func (i Invoice) Counterparty() string {
	if i.Direction == DirectionReceived {
		return i.Sender
	}
	return i.Recipient
}

// InvoiceItem is one line of a create-invoice draft. Items are assembled
// into the create payload and discarded after submission.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// InvoiceDraft is the payload for creating an invoice. DueDate uses the
// dd-mm-yyyy format the API expects on this endpoint.
type InvoiceDraft struct {
	BusinessID int64         `json:"business_id"`
	DueDate    string        `json:"due_date"`
	Items      []InvoiceItem `json:"items"`
}

// Subtotal sums quantity times unit price over all items.
func (d InvoiceDraft) Subtotal() float64 {
	var sum float64
	for _, item := range d.Items {
		sum += float64(item.Quantity) * item.UnitPrice
	}
	return sum
}
