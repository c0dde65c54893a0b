package entities

import "time"

// InvoiceStatus represents the billing lifecycle of an invoice.
//
// "paid" is reachable from any prior state via a direct update; the transition
// stamps PaidDate when none was supplied. No other transition has side effects.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// LineItem is a single invoice line. Quantity times Rate is never computed by
// this layer; subtotal/tax/total are supplied by the caller as-is.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

type Discount struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// Invoice is the billing document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_number-index): invoice_number
//
// Number is the human-readable identifier (INV-YYYYMM-XXXX), generated once at
// creation with a collision-checked loop against the GSI. QuoteID links back to
// the originating quote request when the invoice came out of a won lead.
type Invoice struct {
	ID            string        `json:"id"`
	Number        string        `json:"invoiceNumber"`
	Status        InvoiceStatus `json:"status,omitempty"`
	ClientName    string        `json:"clientName"`
	ClientEmail   string        `json:"clientEmail"`
	ClientCompany string        `json:"clientCompany"`
	ClientPhone   string        `json:"clientPhone"`
	ClientAddress string        `json:"clientAddress"`
	LineItems     []LineItem    `json:"lineItems"`
	Subtotal      float64       `json:"subtotal"`
	Discount      Discount      `json:"discount"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	PaymentTerms  string        `json:"paymentTerms"`
	Notes         string        `json:"notes"`
	QuoteID       string        `json:"quoteId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	DueDate       time.Time     `json:"dueDate"`
	PaidDate      time.Time     `json:"paidDate"`
}

// InvoicePatch is the explicit set of fields a partial update may touch.
// Nil means "leave untouched"; supplied fields overwrite, unmentioned stored
// attributes survive the update.
type InvoicePatch struct {
	Status        *InvoiceStatus
	ClientName    *string
	ClientEmail   *string
	ClientCompany *string
	ClientPhone   *string
	ClientAddress *string
	LineItems     *[]LineItem
	Subtotal      *float64
	Discount      *Discount
	Tax           *float64
	Total         *float64
	PaymentTerms  *string
	Notes         *string
	QuoteID       *string
	DueDate       *time.Time
	PaidDate      *time.Time
}
