package request

import (
	"errors"
	"testing"
	"time"

	"webstudio_backend/internal/domain/entities"
)

func TestCreateInvoiceRequest_ToCommand(t *testing.T) {
	r := CreateInvoiceRequest{
		Status:     "draft",
		ClientName: "Acme",
		LineItems: []LineItemRequest{
			{ID: "li-1", Description: "Landing page", Quantity: 1, Rate: 1200},
		},
		Subtotal: 1200,
		Discount: DiscountRequest{Amount: 10, Type: "percentage"},
		Tax:      228,
		Total:    1308,
		DueDate:  "2026-09-30",
	}

	cmd, err := r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.Status != entities.InvoiceStatusDraft {
		t.Fatalf("unexpected status: %s", cmd.Status)
	}
	if len(cmd.LineItems) != 1 || cmd.LineItems[0].Rate != 1200 {
		t.Fatalf("unexpected line items: %+v", cmd.LineItems)
	}
	if cmd.Discount.Type != "percentage" {
		t.Fatalf("unexpected discount: %+v", cmd.Discount)
	}
	want := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	if !cmd.DueDate.Equal(want) {
		t.Fatalf("unexpected due date: %v", cmd.DueDate)
	}
}

func TestCreateInvoiceRequest_ToCommandDates(t *testing.T) {
	r := CreateInvoiceRequest{}
	cmd, err := r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmd.DueDate.IsZero() {
		t.Fatalf("expected zero due date, got %v", cmd.DueDate)
	}

	r.DueDate = "2026-09-30T12:00:00Z"
	cmd, err = r.ToCommand()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.DueDate.Hour() != 12 {
		t.Fatalf("expected RFC3339 parse, got %v", cmd.DueDate)
	}

	r.DueDate = "soon"
	if _, err = r.ToCommand(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateInvoiceRequest_ToPatch(t *testing.T) {
	status := "paid"
	notes := "wire received"
	paidDate := "2026-08-28"
	items := []LineItemRequest{{ID: "li-1", Description: "Landing page", Quantity: 1, Rate: 1200}}

	r := UpdateInvoiceRequest{
		Status:    &status,
		Notes:     &notes,
		PaidDate:  &paidDate,
		LineItems: &items,
	}

	patch, err := r.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.Status == nil || *patch.Status != entities.InvoiceStatusPaid {
		t.Fatalf("unexpected status: %+v", patch.Status)
	}
	if patch.Notes == nil || *patch.Notes != "wire received" {
		t.Fatalf("unexpected notes: %+v", patch.Notes)
	}
	if patch.PaidDate == nil || patch.PaidDate.Day() != 28 {
		t.Fatalf("unexpected paid date: %+v", patch.PaidDate)
	}
	if patch.LineItems == nil || len(*patch.LineItems) != 1 {
		t.Fatalf("unexpected line items: %+v", patch.LineItems)
	}
	if patch.ClientName != nil || patch.DueDate != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", patch)
	}
}

func TestUpdateInvoiceRequest_ToPatchInvalidDate(t *testing.T) {
	bad := "yesterday"
	r := UpdateInvoiceRequest{DueDate: &bad}
	if _, err := r.ToPatch(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
