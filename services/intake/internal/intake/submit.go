package intake

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/stoik/intake/internal/models"
)

// Clean returns a copy of p with blank and whitespace-only entries
// removed from the to/cc recipient lists. Cleaning runs before
// validation and before anything is sent, so blanks are never stored.
func Clean(p models.NewPayload) models.NewPayload {
	p.EmailInfo.To = cleanRecipients(p.EmailInfo.To)
	p.EmailInfo.CC = cleanRecipients(p.EmailInfo.CC)
	return p
}

func cleanRecipients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, addr := range in {
		if strings.TrimSpace(addr) != "" {
			out = append(out, addr)
		}
	}
	return out
}

// Validate applies the submission rules to an already-cleaned payload.
func Validate(p models.NewPayload) error {
	if strings.TrimSpace(p.EmailInfo.Subject) == "" || strings.TrimSpace(p.EmailInfo.From) == "" {
		return &ValidationError{Reason: "Email subject and from are required"}
	}
	if len(p.EmailInfo.To) == 0 {
		return &ValidationError{Reason: "At least one 'to' email is required"}
	}
	return nil
}

// Submit cleans and validates p, then creates it on the backend. It
// returns the server-assigned id of the new payload. Validation
// failures never reach the network.
func (s *Service) Submit(ctx context.Context, p models.NewPayload) (int, error) {
	p = Clean(p)
	if err := Validate(p); err != nil {
		return 0, err
	}
	created, err := s.backend.CreatePayload(ctx, p)
	if err != nil {
		return 0, err
	}
	s.log.Info("payload submitted", zap.Int("id", created.ID))
	return created.ID, nil
}

// rawPayload distinguishes a missing section from an empty one, which
// the concrete struct types cannot.
type rawPayload struct {
	EmailInfo *models.EmailInfo `json:"emailInfo"`
	LeadInfo  *models.LeadInfo  `json:"leadInfo"`
}

// SubmitRaw parses a raw JSON blob and routes it through the same
// cleaning, validation and submission path as Submit. A syntactically
// malformed blob fails with a ParseError, never a ValidationError.
func (s *Service) SubmitRaw(ctx context.Context, blob []byte) (int, error) {
	var raw rawPayload
	if err := json.Unmarshal(blob, &raw); err != nil {
		return 0, &ParseError{Err: err}
	}
	if raw.EmailInfo == nil || raw.LeadInfo == nil {
		return 0, &ValidationError{Reason: "Invalid payload structure"}
	}
	return s.Submit(ctx, models.NewPayload{
		EmailInfo: *raw.EmailInfo,
		LeadInfo:  *raw.LeadInfo,
	})
}
