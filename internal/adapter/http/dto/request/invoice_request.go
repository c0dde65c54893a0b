package request

import (
	"errors"
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, expected ISO-8601")

type LineItemRequest struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type DiscountRequest struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// CreateInvoiceRequest is the administrative invoice creation payload.
// Client name/email are required by convention only and deliberately not
// enforced here; subtotal/tax/total are stored verbatim, never derived.
type CreateInvoiceRequest struct {
	Status        string            `json:"status"`
	ClientName    string            `json:"clientName"`
	ClientEmail   string            `json:"clientEmail"`
	ClientCompany string            `json:"clientCompany"`
	ClientPhone   string            `json:"clientPhone"`
	ClientAddress string            `json:"clientAddress"`
	LineItems     []LineItemRequest `json:"lineItems"`
	Subtotal      float64           `json:"subtotal"`
	Discount      DiscountRequest   `json:"discount"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	PaymentTerms  string            `json:"paymentTerms"`
	Notes         string            `json:"notes"`
	QuoteID       string            `json:"quoteId"`
	DueDate       string            `json:"dueDate"`
}

func (r CreateInvoiceRequest) ToCommand() (usecase.CreateInvoiceCommand, error) {
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.CreateInvoiceCommand{}, err
	}

	lineItems := make([]entities.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		lineItems = append(lineItems, entities.LineItem(li))
	}

	return usecase.CreateInvoiceCommand{
		Status:        entities.InvoiceStatus(r.Status),
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientCompany: r.ClientCompany,
		ClientPhone:   r.ClientPhone,
		ClientAddress: r.ClientAddress,
		LineItems:     lineItems,
		Subtotal:      r.Subtotal,
		Discount:      entities.Discount(r.Discount),
		Tax:           r.Tax,
		Total:         r.Total,
		PaymentTerms:  r.PaymentTerms,
		Notes:         r.Notes,
		QuoteID:       r.QuoteID,
		DueDate:       dueDate,
	}, nil
}

// UpdateInvoiceRequest is the administrative PATCH body. Every field is
// optional; nil leaves the stored attribute untouched. Unknown fields are
// rejected at decode time so arbitrary attributes cannot be injected into
// the document.
type UpdateInvoiceRequest struct {
	Status        *string            `json:"status"`
	ClientName    *string            `json:"clientName"`
	ClientEmail   *string            `json:"clientEmail"`
	ClientCompany *string            `json:"clientCompany"`
	ClientPhone   *string            `json:"clientPhone"`
	ClientAddress *string            `json:"clientAddress"`
	LineItems     *[]LineItemRequest `json:"lineItems"`
	Subtotal      *float64           `json:"subtotal"`
	Discount      *DiscountRequest   `json:"discount"`
	Tax           *float64           `json:"tax"`
	Total         *float64           `json:"total"`
	PaymentTerms  *string            `json:"paymentTerms"`
	Notes         *string            `json:"notes"`
	QuoteID       *string            `json:"quoteId"`
	DueDate       *string            `json:"dueDate"`
	PaidDate      *string            `json:"paidDate"`
}

func (r UpdateInvoiceRequest) ToPatch() (entities.InvoicePatch, error) {
	patch := entities.InvoicePatch{
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientCompany: r.ClientCompany,
		ClientPhone:   r.ClientPhone,
		ClientAddress: r.ClientAddress,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Total:         r.Total,
		PaymentTerms:  r.PaymentTerms,
		Notes:         r.Notes,
		QuoteID:       r.QuoteID,
	}

	if r.Status != nil {
		status := entities.InvoiceStatus(*r.Status)
		patch.Status = &status
	}
	if r.LineItems != nil {
		lineItems := make([]entities.LineItem, 0, len(*r.LineItems))
		for _, li := range *r.LineItems {
			lineItems = append(lineItems, entities.LineItem(li))
		}
		patch.LineItems = &lineItems
	}
	if r.Discount != nil {
		discount := entities.Discount(*r.Discount)
		patch.Discount = &discount
	}
	if r.DueDate != nil {
		dueDate, err := parseDate(*r.DueDate)
		if err != nil {
			return entities.InvoicePatch{}, err
		}
		patch.DueDate = &dueDate
	}
	if r.PaidDate != nil {
		paidDate, err := parseDate(*r.PaidDate)
		if err != nil {
			return entities.InvoicePatch{}, err
		}
		patch.PaidDate = &paidDate
	}
	return patch, nil
}

// parseDate accepts a full RFC3339 timestamp or a bare date. Empty input is
// a zero time, not an error.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
