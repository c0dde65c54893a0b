package entities

import "time"

// Project is a portfolio entry shown on the marketing site.
type Project struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Tech      []string  `json:"tech"`
	URL       string    `json:"url"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

// Review is a client testimonial shown on the marketing site.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company"`
	Rating    int       `json:"rating"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
