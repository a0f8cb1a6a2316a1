package utils

import (
	"errors"
	"strings"
)

// OrderRef is the correlation identifier embedded in the provider's order_id
// field. It pairs the local order id with the target project id so a callback
// can be reconciled without any provider-side metadata. Either component may
// be empty: direct donation buttons carry only a project id, and legacy
// orders carry only the order id.
type OrderRef struct {
	OrderID   string
	ProjectID string
}

// Format renders the reference as "<orderID>:<projectID>", omitting the
// separator when the project component is empty.
func (r OrderRef) Format() string {
	if r.ProjectID == "" {
		return r.OrderID
	}
	return r.OrderID + ":" + r.ProjectID
}

// ParseOrderRef splits a provider order_id back into its components. A value
// without a separator is treated as a bare order id with no project.
func ParseOrderRef(s string) (OrderRef, error) {
	if s == "" {
		return OrderRef{}, errors.New("empty order reference")
	}

	orderID, projectID, _ := strings.Cut(s, ":")
	return OrderRef{OrderID: orderID, ProjectID: projectID}, nil
}
