package models

import "time"

// Document is a link attached to exactly one payload. The link is a
// free-form string; nothing beyond non-emptiness is enforced anywhere.
type Document struct {
	ID           int       `json:"id"`
	PayloadID    int       `json:"payloadId"`
	DocumentLink string    `json:"documentLink"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewDocument is the create-document request body.
type NewDocument struct {
	PayloadID    int    `json:"payloadId"`
	DocumentLink string `json:"documentLink"`
}
