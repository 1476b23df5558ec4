package models

import "time"

// AlertSubscription is one user's request to be notified when an asset
// reaches a target price. Subscriptions are keyed by email: a new
// subscription for the same email replaces the old one.
type AlertSubscription struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Asset       string    `json:"asset"`
	TargetPrice float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message is an outbound email notification.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}
