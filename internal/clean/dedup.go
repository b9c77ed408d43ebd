package clean

import "jobcorpus-engine/internal/domain"

// Counts is the validator's observable side effect, reported by the pipeline.
type Counts struct {
	In        int `json:"in"`
	Validated int `json:"validated"`
	Deduped   int `json:"deduped"`
}

// FilterAndDedup drops records below the minimum content threshold, then keeps
// the first-seen record per dedup key. Output order is input order restricted
// to survivors, so identical input always yields identical output.
func FilterAndDedup(in []domain.CleanedRecord, minDescriptionLen int) ([]domain.CleanedRecord, Counts) {
	counts := Counts{In: len(in)}

	seen := make(map[string]bool, len(in))
	out := make([]domain.CleanedRecord, 0, len(in))

	for _, r := range in {
		if r.Title == "" {
			continue
		}
		if len([]rune(r.Description)) < minDescriptionLen {
			continue
		}
		counts.Validated++

		if seen[r.DedupKey] {
			continue
		}
		seen[r.DedupKey] = true
		out = append(out, r)
	}

	counts.Deduped = len(out)
	return out, counts
}
