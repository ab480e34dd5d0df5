package models

import "fmt"

// StatusFilter narrows which invoices are requested from the server.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterPaid      StatusFilter = "paid"
	FilterCancelled StatusFilter = "cancelled"
	FilterOverdue   StatusFilter = "overdue"
)

// StatusFilters lists every accepted filter value, in display order.
var StatusFilters = []StatusFilter{FilterAll, FilterPending, FilterPaid, FilterCancelled, FilterOverdue}

// ParseStatusFilter validates a user-supplied filter string. An empty string
// means FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range StatusFilters {
		if StatusFilter(s) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown status filter %q (want one of: all, pending, paid, cancelled, overdue)", s)
}
