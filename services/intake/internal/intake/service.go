package intake

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/stoik/intake/internal/models"
	"github.com/stoik/intake/services/intake/internal/backend"
)

// Service drives the payload and document workflows against the backend
// and holds the single in-memory view of the fetched data. The view is
// only updated by explicit reloads; overlapping reloads resolve
// last-write-wins, which is acceptable since the backend offers no
// consistency guarantee to violate.
type Service struct {
	backend backend.Backend
	log     *zap.Logger

	mu        sync.Mutex
	payloads  []models.Payload
	documents map[int][]models.Document
}

func NewService(b backend.Backend, log *zap.Logger) *Service {
	return &Service{
		backend:   b,
		log:       log,
		documents: make(map[int][]models.Document),
	}
}

// Reload fetches the full payload set with embedded documents and
// replaces the in-memory view. This is the single source of truth for
// every listing view; there is no partial or paginated fetch.
func (s *Service) Reload(ctx context.Context) ([]models.Payload, error) {
	payloads, err := s.backend.ListPayloadsWithDocuments(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.payloads = payloads
	s.mu.Unlock()
	return payloads, nil
}

// Payloads returns the last loaded payload view.
func (s *Service) Payloads() []models.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payloads
}

// Payload fetches a single payload, optionally with its documents embedded.
func (s *Service) Payload(ctx context.Context, id int, withDocuments bool) (models.Payload, error) {
	if withDocuments {
		return s.backend.GetPayloadWithDocuments(ctx, id)
	}
	return s.backend.GetPayload(ctx, id)
}

// refresh re-fetches the per-payload document list and the aggregate
// payload view after a document mutation, so completeness counts stay
// consistent. Failures are logged and swallowed: the mutation itself
// already succeeded and its outcome must not be masked.
func (s *Service) refresh(ctx context.Context, payloadID int) {
	if _, err := s.Documents(ctx, payloadID); err != nil {
		s.log.Warn("document list refresh failed",
			zap.Int("payload_id", payloadID), zap.Error(err))
	}
	if _, err := s.Reload(ctx); err != nil {
		s.log.Warn("payload list refresh failed", zap.Error(err))
	}
}
