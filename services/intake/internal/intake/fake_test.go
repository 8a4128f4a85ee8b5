package intake

import (
	"context"
	"net/http"

	"github.com/stoik/intake/internal/models"
	"github.com/stoik/intake/services/intake/internal/backend"
)

// fakeBackend records calls and serves canned responses so flow tests
// can assert exactly what reached the network layer.
type fakeBackend struct {
	createdPayloads  []models.NewPayload
	createPayloadID  int
	createPayloadErr error

	createdDocuments  []models.NewDocument
	createDocumentErr error

	deletedDocuments  []int
	deleteDocumentErr error

	payloads  []models.Payload
	listErr   error
	listCalls int
	docsByID  map[int][]models.Document
	docsErr   error
	docsCalls int
}

func (f *fakeBackend) ListPayloads(ctx context.Context) ([]models.Payload, error) {
	return f.payloads, f.listErr
}

func (f *fakeBackend) GetPayload(ctx context.Context, id int) (models.Payload, error) {
	for _, p := range f.payloads {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payload{}, &backend.APIError{Status: http.StatusNotFound, Message: "payload not found"}
}

func (f *fakeBackend) GetPayloadWithDocuments(ctx context.Context, id int) (models.Payload, error) {
	p, err := f.GetPayload(ctx, id)
	if err != nil {
		return models.Payload{}, err
	}
	p.Documents = f.docsByID[id]
	return p, nil
}

func (f *fakeBackend) ListPayloadsWithDocuments(ctx context.Context) ([]models.Payload, error) {
	f.listCalls++
	return f.payloads, f.listErr
}

func (f *fakeBackend) CreatePayload(ctx context.Context, p models.NewPayload) (models.Payload, error) {
	if f.createPayloadErr != nil {
		return models.Payload{}, f.createPayloadErr
	}
	f.createdPayloads = append(f.createdPayloads, p)
	return models.Payload{ID: f.createPayloadID, EmailInfo: p.EmailInfo, LeadInfo: p.LeadInfo}, nil
}

func (f *fakeBackend) DocumentsForPayload(ctx context.Context, payloadID int) ([]models.Document, error) {
	f.docsCalls++
	if f.docsErr != nil {
		return nil, f.docsErr
	}
	return f.docsByID[payloadID], nil
}

func (f *fakeBackend) CreateDocument(ctx context.Context, d models.NewDocument) (models.Document, error) {
	if f.createDocumentErr != nil {
		return models.Document{}, f.createDocumentErr
	}
	f.createdDocuments = append(f.createdDocuments, d)
	return models.Document{ID: len(f.createdDocuments), PayloadID: d.PayloadID, DocumentLink: d.DocumentLink}, nil
}

func (f *fakeBackend) DeleteDocument(ctx context.Context, id int) error {
	if f.deleteDocumentErr != nil {
		return f.deleteDocumentErr
	}
	f.deletedDocuments = append(f.deletedDocuments, id)
	return nil
}
