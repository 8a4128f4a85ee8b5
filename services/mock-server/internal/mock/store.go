package mock

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stoik/intake/internal/models"
)

// Store is an in-memory stand-in for the payload backend's database.
// All methods are safe for concurrent use.
type Store struct {
	mu             sync.Mutex
	payloads       map[int]models.Payload
	documents      map[int]models.Document
	nextPayloadID  int
	nextDocumentID int
}

func NewStore() *Store {
	return &Store{
		payloads:       make(map[int]models.Payload),
		documents:      make(map[int]models.Document),
		nextPayloadID:  1,
		nextDocumentID: 1,
	}
}

// CreatePayload assigns an id and timestamp and stores the payload.
func (s *Store) CreatePayload(p models.NewPayload) models.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := models.Payload{
		ID:        s.nextPayloadID,
		EmailInfo: p.EmailInfo,
		LeadInfo:  p.LeadInfo,
		CreatedAt: time.Now().UTC(),
	}
	s.nextPayloadID++
	s.payloads[created.ID] = created
	return created
}

// Payload returns a payload without documents embedded.
func (s *Store) Payload(id int) (models.Payload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payloads[id]
	return p, ok
}

// Payloads returns all payloads without documents, ordered by id.
func (s *Store) Payloads() []models.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Payload, 0, len(s.payloads))
	for _, p := range s.payloads {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PayloadWithDocuments returns a payload with its documents embedded.
func (s *Store) PayloadWithDocuments(id int) (models.Payload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payloads[id]
	if !ok {
		return models.Payload{}, false
	}
	p.Documents = s.documentsForLocked(id)
	return p, true
}

// PayloadsWithDocuments returns all payloads with documents, ordered by id.
func (s *Store) PayloadsWithDocuments() []models.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Payload, 0, len(s.payloads))
	for id, p := range s.payloads {
		p.Documents = s.documentsForLocked(id)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DocumentsForPayload returns the documents attached to a payload,
// ordered by id. Unknown payloads yield an empty list, matching the
// real backend.
func (s *Store) DocumentsForPayload(payloadID int) []models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentsForLocked(payloadID)
}

func (s *Store) documentsForLocked(payloadID int) []models.Document {
	var docs []models.Document
	for _, d := range s.documents {
		if d.PayloadID == payloadID {
			docs = append(docs, d)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// CreateDocument attaches a link to a payload. It reports false when
// the payload does not exist.
func (s *Store) CreateDocument(d models.NewDocument) (models.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payloads[d.PayloadID]; !ok {
		return models.Document{}, false
	}
	created := models.Document{
		ID:           s.nextDocumentID,
		PayloadID:    d.PayloadID,
		DocumentLink: d.DocumentLink,
		CreatedAt:    time.Now().UTC(),
	}
	s.nextDocumentID++
	s.documents[created.ID] = created
	return created, true
}

// DeleteDocument removes a document by id, reporting whether it existed.
func (s *Store) DeleteDocument(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return false
	}
	delete(s.documents, id)
	return true
}

var sampleSubjects = []string{
	"API Management Inquiry",
	"Integration Platform Evaluation",
	"Identity Server Pricing",
	"Choreo Trial Follow-up",
	"Partner Program Question",
}

var sampleCompanies = []string{
	"ACME Corp.",
	"Globex",
	"Initech",
	"Umbrella Logistics",
	"Stark Industrial",
}

// SeedSamples inserts n generated payloads, attaching a document link
// to every other one so both completeness classes exist out of the box.
func (s *Store) SeedSamples(n int) int {
	for i := 0; i < n; i++ {
		p := s.CreatePayload(models.NewPayload{
			EmailInfo: models.EmailInfo{
				Subject: fmt.Sprintf("%s #%d", sampleSubjects[i%len(sampleSubjects)], i+1),
				From:    fmt.Sprintf("noreply+%d@forms.example.com", i+1),
				To:      []string{"intake@example.com"},
				CC:      []string{},
			},
			LeadInfo: models.LeadInfo{
				FirstName: fmt.Sprintf("Lead%d", i+1),
				LastName:  "Sample",
				Email:     fmt.Sprintf("lead%d@prospects.example", i+1),
				Company:   sampleCompanies[i%len(sampleCompanies)],
				Country:   "FR",
			},
		})
		if i%2 == 0 {
			s.CreateDocument(models.NewDocument{
				PayloadID:    p.ID,
				DocumentLink: fmt.Sprintf("https://docs.example.com/files/%s.pdf", uuid.NewString()),
			})
		}
	}
	return n
}
