package intake

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/stoik/intake/internal/models"
)

// Documents fetches the documents attached to a payload, in
// server-provided order, and updates the in-memory view. An empty
// result means "no documents yet" and is not an error.
func (s *Service) Documents(ctx context.Context, payloadID int) ([]models.Document, error) {
	docs, err := s.backend.DocumentsForPayload(ctx, payloadID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.documents[payloadID] = docs
	s.mu.Unlock()
	return docs, nil
}

// AddDocument attaches a link to a payload. An empty or whitespace-only
// link is rejected before any network call. On success both the
// per-payload document list and the aggregate payload view are
// refreshed.
func (s *Service) AddDocument(ctx context.Context, payloadID int, link string) (models.Document, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return models.Document{}, &ValidationError{Reason: "Please enter a document link"}
	}
	doc, err := s.backend.CreateDocument(ctx, models.NewDocument{
		PayloadID:    payloadID,
		DocumentLink: link,
	})
	if err != nil {
		return models.Document{}, err
	}
	s.log.Info("document added",
		zap.Int("id", doc.ID), zap.Int("payload_id", payloadID))
	s.refresh(ctx, payloadID)
	return doc, nil
}

// DeleteDocument removes a document from a payload. Confirmation is the
// caller's concern; this operation is confirmation-agnostic. Deleting a
// non-existent document surfaces the backend's not-found error
// untouched. On success the same dual refresh as AddDocument runs.
func (s *Service) DeleteDocument(ctx context.Context, payloadID, documentID int) error {
	if err := s.backend.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	s.log.Info("document deleted",
		zap.Int("id", documentID), zap.Int("payload_id", payloadID))
	s.refresh(ctx, payloadID)
	return nil
}
