package intake

import (
	"testing"

	"github.com/stoik/intake/internal/models"
)

func samplePayloads() []models.Payload {
	return []models.Payload{
		{
			ID: 3,
			EmailInfo: models.EmailInfo{Subject: "Pricing question", From: "carol@globex.example"},
			LeadInfo:  models.LeadInfo{FirstName: "Carol", LastName: "Mills", Company: "Globex"},
			Documents: []models.Document{{ID: 1, PayloadID: 3, DocumentLink: "https://docs.example.com/a.pdf"}},
		},
		{
			ID: 1,
			EmailInfo: models.EmailInfo{Subject: "Integration trial", From: "bob@initech.example"},
			LeadInfo:  models.LeadInfo{FirstName: "Bob", LastName: "Porter", Company: "Initech", CanHelpComment: "Needs SSO rollout help"},
		},
		{
			ID: 2,
			EmailInfo: models.EmailInfo{Subject: "Partner program", From: "alice@acme.example"},
			LeadInfo:  models.LeadInfo{FirstName: "Alice", LastName: "Nguyen", Company: "ACME Corp."},
			Documents: []models.Document{}, // fetched, but empty: still pending
		},
	}
}

func ids(payloads []models.Payload) []int {
	out := make([]int, len(payloads))
	for i, p := range payloads {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterSortsAscendingByID(t *testing.T) {
	got := ids(FilterPayloads(samplePayloads(), FilterAll, ""))
	if !equalIDs(got, []int{1, 2, 3}) {
		t.Errorf("order = %v, want [1 2 3]", got)
	}
}

func TestCompletenessPartition(t *testing.T) {
	payloads := samplePayloads()
	complete := FilterPayloads(payloads, FilterWithDocuments, "")
	pending := FilterPayloads(payloads, FilterWithoutDocuments, "")

	if !equalIDs(ids(complete), []int{3}) {
		t.Errorf("complete = %v, want [3]", ids(complete))
	}
	if !equalIDs(ids(pending), []int{1, 2}) {
		t.Errorf("pending = %v, want [1 2]", ids(pending))
	}
	if len(complete)+len(pending) != len(payloads) {
		t.Error("the two filters must partition the full set")
	}
	for _, c := range complete {
		for _, p := range pending {
			if c.ID == p.ID {
				t.Errorf("payload %d appears in both partitions", c.ID)
			}
		}
	}
}

func TestEmptyDocumentListIsPending(t *testing.T) {
	p := models.Payload{ID: 2, Documents: []models.Document{}}
	if p.HasDocuments() {
		t.Error("a payload with documents: [] must classify as pending")
	}
}

func TestSearchHelpCommentCaseInsensitive(t *testing.T) {
	got := FilterPayloads(samplePayloads(), FilterAll, "sso ROLLOUT")
	if !equalIDs(ids(got), []int{1}) {
		t.Errorf("search result = %v, want [1]", ids(got))
	}
}

func TestSearchCombinesWithFilter(t *testing.T) {
	// "example" matches every from-address, but only payload 3 is complete.
	got := FilterPayloads(samplePayloads(), FilterWithDocuments, "EXAMPLE")
	if !equalIDs(ids(got), []int{3}) {
		t.Errorf("result = %v, want [3]", ids(got))
	}
}

func TestSearchNoMatch(t *testing.T) {
	if got := FilterPayloads(samplePayloads(), FilterAll, "zzz-no-such-term"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(samplePayloads())
	want := Stats{Total: 3, WithDocs: 1, WithoutDocs: 2, TotalDocuments: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{
		"":                  FilterAll,
		"all":               FilterAll,
		"with-documents":    FilterWithDocuments,
		"withDocuments":     FilterWithDocuments,
		"without-documents": FilterWithoutDocuments,
		"withoutDocuments":  FilterWithoutDocuments,
	} {
		got, err := ParseFilter(in)
		if err != nil || got != want {
			t.Errorf("ParseFilter(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFilter("bogus"); err == nil {
		t.Error("expected an error for an unknown filter")
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	payloads := samplePayloads()
	FilterPayloads(payloads, FilterAll, "")
	if !equalIDs(ids(payloads), []int{3, 1, 2}) {
		t.Errorf("input slice reordered: %v", ids(payloads))
	}
}
