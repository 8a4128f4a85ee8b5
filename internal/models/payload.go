package models

import "time"

// EmailInfo is the email envelope section of a payload.
type EmailInfo struct {
	Subject string   `json:"subject"`
	From    string   `json:"from"`
	To      []string `json:"to"`
	CC      []string `json:"cc"`
}

// LeadInfo describes the contact/prospect attached to a payload.
// Every field is optional; the backend stores empty strings as-is.
type LeadInfo struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	Country        string `json:"country"`
	State          string `json:"state"`
	Industry       string `json:"industry"`
	AreaOfInterest string `json:"areaOfInterest"`
	ContactReason  string `json:"contactReason"`
	CanHelpComment string `json:"canHelpComment"`
}

// Payload is a submitted record as returned by the backend.
// Documents is only populated by the "with documents" reads;
// it stays nil on the plain payload reads.
type Payload struct {
	ID        int        `json:"id"`
	EmailInfo EmailInfo  `json:"emailInfo"`
	LeadInfo  LeadInfo   `json:"leadInfo"`
	Documents []Document `json:"documents,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewPayload is the create-payload request body: a payload minus the
// server-assigned id and timestamp.
type NewPayload struct {
	EmailInfo EmailInfo `json:"emailInfo"`
	LeadInfo  LeadInfo  `json:"leadInfo"`
}

// HasDocuments reports whether the payload classifies as "complete",
// i.e. it carries at least one attached document.
func (p Payload) HasDocuments() bool {
	return len(p.Documents) > 0
}
