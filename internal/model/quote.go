package model

import "time"

// Quote is a snapshot of a traded instrument's current price and metadata.
//
// Price is nil when the provider reports neither a live trade price nor a
// last regular-session price. Consumers must skip such quotes instead of
// computing with them.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         *float64  `json:"price"`
	Currency      string    `json:"currency"`
	ChangePercent float64   `json:"change_percent"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// HasPrice reports whether the quote carries a usable price.
func (q *Quote) HasPrice() bool {
	return q != nil && q.Price != nil
}
