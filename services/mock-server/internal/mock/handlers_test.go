package mock

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stoik/intake/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: non-JSON body %q", method, path, w.Body.String())
	}
	return w, env
}

func TestCreateAndListPayloads(t *testing.T) {
	r := NewRouter(NewStore())

	w, env := doJSON(t, r, http.MethodPost, "/api/payloads", models.NewPayload{
		EmailInfo: models.EmailInfo{Subject: "s", From: "f@x.com", To: []string{"a@x.com"}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var created models.Payload
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("created.ID = %d, want 1", created.ID)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/payloads", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var listed []models.Payload
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d payloads, want 1", len(listed))
	}
}

func TestCreatePayloadRequiredShape(t *testing.T) {
	r := NewRouter(NewStore())

	w, env := doJSON(t, r, http.MethodPost, "/api/payloads", models.NewPayload{
		EmailInfo: models.EmailInfo{Subject: "s", From: "f@x.com"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if env.Message == "" {
		t.Error("error responses must carry a message field")
	}
}

func TestAllDocumentsRouteSharesIDSegment(t *testing.T) {
	store := NewStore()
	p := store.CreatePayload(models.NewPayload{
		EmailInfo: models.EmailInfo{Subject: "s", From: "f@x.com", To: []string{"a@x.com"}},
	})
	store.CreateDocument(models.NewDocument{PayloadID: p.ID, DocumentLink: "https://docs.example.com/a.pdf"})
	r := NewRouter(store)

	// /payloads/all/documents is served by the :id route.
	w, env := doJSON(t, r, http.MethodGet, "/api/payloads/all/documents", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("all/documents status = %d", w.Code)
	}
	var all []models.Payload
	if err := json.Unmarshal(env.Data, &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != 1 || len(all[0].Documents) != 1 {
		t.Errorf("aggregate view = %+v", all)
	}

	// And a numeric id on the same route returns a single payload.
	w, env = doJSON(t, r, http.MethodGet, "/api/payloads/1/documents", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("single with documents status = %d", w.Code)
	}
	var one models.Payload
	if err := json.Unmarshal(env.Data, &one); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if one.ID != 1 || len(one.Documents) != 1 {
		t.Errorf("single view = %+v", one)
	}
}

func TestDocumentEndpoints(t *testing.T) {
	store := NewStore()
	p := store.CreatePayload(models.NewPayload{
		EmailInfo: models.EmailInfo{Subject: "s", From: "f@x.com", To: []string{"a@x.com"}},
	})
	r := NewRouter(store)

	w, env := doJSON(t, r, http.MethodPost, "/api/documents", models.NewDocument{
		PayloadID: p.ID, DocumentLink: "https://docs.example.com/a.pdf",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create doc status = %d, body %s", w.Code, w.Body.String())
	}
	var doc models.Document
	if err := json.Unmarshal(env.Data, &doc); err != nil {
		t.Fatalf("decode doc: %v", err)
	}

	w, env = doJSON(t, r, http.MethodGet, "/api/documents/payload/1", nil)
	var docs []models.Document
	if err := json.Unmarshal(env.Data, &docs); err != nil {
		t.Fatalf("decode docs: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("docs = %+v, want 1 entry", docs)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/api/documents/1", nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}

	w, env = doJSON(t, r, http.MethodDelete, "/api/documents/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
	if env.Message != "document not found" {
		t.Errorf("message = %q, want %q", env.Message, "document not found")
	}
}

func TestCreateDocumentValidation(t *testing.T) {
	r := NewRouter(NewStore())

	w, _ := doJSON(t, r, http.MethodPost, "/api/documents", models.NewDocument{PayloadID: 1, DocumentLink: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank link status = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/documents", models.NewDocument{PayloadID: 42, DocumentLink: "https://x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown payload status = %d, want 404", w.Code)
	}
}

func TestAdminSeed(t *testing.T) {
	store := NewStore()
	r := NewRouter(store)

	w, _ := doJSON(t, r, http.MethodPost, "/admin/seed", map[string]int{"count": 4})
	if w.Code != http.StatusOK {
		t.Fatalf("seed status = %d", w.Code)
	}
	if len(store.Payloads()) != 4 {
		t.Errorf("store holds %d payloads after seed, want 4", len(store.Payloads()))
	}
}
