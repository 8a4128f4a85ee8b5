package backend

import (
	"context"

	"github.com/stoik/intake/internal/models"
)

// Backend defines the client contract against the payload/document REST API.
// The API performs no business validation beyond required shape; callers are
// responsible for cleaning and validating before submission.
type Backend interface {
	// ListPayloads retrieves all payloads without embedded documents.
	ListPayloads(ctx context.Context) ([]models.Payload, error)

	// GetPayload retrieves a single payload without documents.
	GetPayload(ctx context.Context, id int) (models.Payload, error)

	// GetPayloadWithDocuments retrieves a single payload with its documents embedded.
	GetPayloadWithDocuments(ctx context.Context, id int) (models.Payload, error)

	// ListPayloadsWithDocuments retrieves all payloads with documents embedded.
	// This is the primary read behind every listing view.
	ListPayloadsWithDocuments(ctx context.Context) ([]models.Payload, error)

	// CreatePayload submits a new payload and returns it with the
	// server-assigned id and timestamp filled in.
	CreatePayload(ctx context.Context, p models.NewPayload) (models.Payload, error)

	// DocumentsForPayload retrieves the documents attached to a payload,
	// in server-provided order. An empty result is not an error.
	DocumentsForPayload(ctx context.Context, payloadID int) ([]models.Document, error)

	// CreateDocument attaches a link to a payload.
	CreateDocument(ctx context.Context, d models.NewDocument) (models.Document, error)

	// DeleteDocument removes a document by id. A missing document surfaces
	// as an APIError satisfying IsNotFound.
	DeleteDocument(ctx context.Context, id int) error
}
