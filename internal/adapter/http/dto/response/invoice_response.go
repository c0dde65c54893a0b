package response

import (
	"time"

	"webstudio_backend/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

type DiscountResponse struct {
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	InvoiceNumber string             `json:"invoiceNumber"`
	Status        string             `json:"status,omitempty"`
	ClientName    string             `json:"clientName"`
	ClientEmail   string             `json:"clientEmail"`
	ClientCompany string             `json:"clientCompany,omitempty"`
	ClientPhone   string             `json:"clientPhone,omitempty"`
	ClientAddress string             `json:"clientAddress,omitempty"`
	LineItems     []LineItemResponse `json:"lineItems"`
	Subtotal      float64            `json:"subtotal"`
	Discount      DiscountResponse   `json:"discount"`
	Tax           float64            `json:"tax"`
	Total         float64            `json:"total"`
	PaymentTerms  string             `json:"paymentTerms,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	QuoteID       string             `json:"quoteId,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	DueDate       *time.Time         `json:"dueDate,omitempty"`
	PaidDate      *time.Time         `json:"paidDate,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lineItems := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		lineItems = append(lineItems, LineItemResponse(li))
	}

	res := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.Number,
		Status:        string(inv.Status),
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientCompany: inv.ClientCompany,
		ClientPhone:   inv.ClientPhone,
		ClientAddress: inv.ClientAddress,
		LineItems:     lineItems,
		Subtotal:      inv.Subtotal,
		Discount:      DiscountResponse(inv.Discount),
		Tax:           inv.Tax,
		Total:         inv.Total,
		PaymentTerms:  inv.PaymentTerms,
		Notes:         inv.Notes,
		QuoteID:       inv.QuoteID,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
	if !inv.DueDate.IsZero() {
		due := inv.DueDate
		res.DueDate = &due
	}
	if !inv.PaidDate.IsZero() {
		paid := inv.PaidDate
		res.PaidDate = &paid
	}
	return res
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

type CreateInvoiceResponse struct {
	Success bool            `json:"success"`
	ID      string          `json:"id"`
	Invoice InvoiceResponse `json:"invoice"`
}

type UpdateInvoiceResponse struct {
	Success bool            `json:"success"`
	Invoice InvoiceResponse `json:"invoice"`
}
