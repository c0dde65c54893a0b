package entities

import "time"

// QuoteStatus represents the sales lifecycle of a quote request.
//
// Domain notes:
//   - Every lead enters as "new"; the remaining states are advanced manually
//     from the back office.
//   - Updates must stay inside this set; free-form statuses are rejected at
//     the boundary.

type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusDeclined  QuoteStatus = "declined"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusNew, QuoteStatusContacted, QuoteStatusQuoted, QuoteStatusAccepted, QuoteStatusDeclined:
		return true
	}
	return false
}

// ServiceFlags is the fixed set of services a prospect can tick on the quote
// form. Unticked boxes are stored as explicit false so every document has the
// same shape.
type ServiceFlags struct {
	Design         bool `json:"design"`
	Development    bool `json:"development"`
	Ecommerce      bool `json:"ecommerce"`
	CustomSoftware bool `json:"customSoftware"`
	SEO            bool `json:"seo"`
	Maintenance    bool `json:"maintenance"`
}

// QuoteRequest is a public quote-form submission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CreatedAt is set once at intake and never modified; UpdatedAt advances on
// every mutation. QuotedAmount is free text supplied by the back office, no
// arithmetic is ever performed on it.
type QuoteRequest struct {
	ID           string       `json:"id"`
	Status       QuoteStatus  `json:"status"`
	ProjectType  string       `json:"projectType"`
	Services     ServiceFlags `json:"services"`
	Timeline     string       `json:"timeline"`
	Budget       string       `json:"budget"`
	HasContent   string       `json:"hasContent"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Company      string       `json:"company"`
	Description  string       `json:"description"`
	Notes        string       `json:"notes"`
	QuotedAmount string       `json:"quotedAmount"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// QuotePatch lists the only fields the back office may change on a stored
// quote request. Nil means "leave untouched".
type QuotePatch struct {
	Status       *QuoteStatus
	Notes        *string
	QuotedAmount *string
}

func (p QuotePatch) Empty() bool {
	return p.Status == nil && p.Notes == nil && p.QuotedAmount == nil
}
