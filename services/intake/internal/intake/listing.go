package intake

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stoik/intake/internal/models"
)

// Filter is the three-way completeness filter over the payload view.
type Filter string

const (
	FilterAll              Filter = "all"
	FilterWithDocuments    Filter = "withDocuments"
	FilterWithoutDocuments Filter = "withoutDocuments"
)

// ParseFilter accepts both the canonical spellings and the kebab-case
// ones used on the command line.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "", "all":
		return FilterAll, nil
	case "withDocuments", "with-documents":
		return FilterWithDocuments, nil
	case "withoutDocuments", "without-documents":
		return FilterWithoutDocuments, nil
	}
	return "", fmt.Errorf("unknown filter %q (want all, with-documents or without-documents)", s)
}

// FilterPayloads applies the completeness filter and the free-text
// search (ANDed together), then sorts ascending by id. The input slice
// is never mutated. Complete means at least one attached document;
// everything else is pending.
func FilterPayloads(payloads []models.Payload, filter Filter, search string) []models.Payload {
	filtered := make([]models.Payload, 0, len(payloads))
	term := strings.ToLower(strings.TrimSpace(search))
	for _, p := range payloads {
		switch filter {
		case FilterWithDocuments:
			if !p.HasDocuments() {
				continue
			}
		case FilterWithoutDocuments:
			if p.HasDocuments() {
				continue
			}
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		filtered = append(filtered, p)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].ID < filtered[j].ID
	})
	return filtered
}

// matchesSearch does a case-insensitive substring match against the
// fixed field set: subject, from, lead first/last name, company and the
// help comment. term must already be lowercased.
func matchesSearch(p models.Payload, term string) bool {
	for _, field := range []string{
		p.EmailInfo.Subject,
		p.EmailInfo.From,
		p.LeadInfo.FirstName,
		p.LeadInfo.LastName,
		p.LeadInfo.Company,
		p.LeadInfo.CanHelpComment,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Stats are the derived summary counts over the full payload view.
// They are recomputed from the fetched list on demand and never stored,
// so displayed counts cannot diverge from the underlying data.
type Stats struct {
	Total          int
	WithDocs       int
	WithoutDocs    int
	TotalDocuments int
}

// ComputeStats derives the summary counts from the full payload set.
func ComputeStats(payloads []models.Payload) Stats {
	stats := Stats{Total: len(payloads)}
	for _, p := range payloads {
		if p.HasDocuments() {
			stats.WithDocs++
		} else {
			stats.WithoutDocs++
		}
		stats.TotalDocuments += len(p.Documents)
	}
	return stats
}
