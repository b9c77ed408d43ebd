// Package pipeline sequences the three transformation stages:
// normalize -> validate/dedup -> annotate. Each stage consumes the previous
// stage's slice and produces a new one; nothing is shared across stages.
package pipeline

import (
	"log"
	"sort"

	"jobcorpus-engine/internal/annotate"
	"jobcorpus-engine/internal/clean"
	"jobcorpus-engine/internal/config"
	"jobcorpus-engine/internal/domain"
)

// Stats carries the per-stage counts for the run report.
type Stats struct {
	Collected int `json:"collected"`
	Cleaned   int `json:"cleaned"`
	Validated int `json:"validated"`
	Deduped   int `json:"deduped"`
	Annotated int `json:"annotated"`
}

type Pipeline struct {
	norm   *clean.Normalizer
	ann    *annotate.Annotator
	minLen int
}

func New(cfg config.Config) *Pipeline {
	return &Pipeline{
		norm:   clean.NewNormalizer(cfg),
		ann:    annotate.New(cfg),
		minLen: cfg.Cleaning.MinDescriptionLen,
	}
}

// Run pushes a raw batch through all stages. It always terminates with a valid
// (possibly empty) annotated slice; a bad record costs that record, never the
// batch. Output is sorted by relevance (stable, so ties keep dedup order).
func (p *Pipeline) Run(raw []domain.RawRecord) ([]domain.AnnotatedRecord, Stats) {
	stats := Stats{Collected: len(raw)}

	cleaned := make([]domain.CleanedRecord, 0, len(raw))
	for _, r := range raw {
		cleaned = append(cleaned, p.norm.Normalize(r))
	}
	stats.Cleaned = len(cleaned)
	log.Printf("[pipeline] cleaned in=%d out=%d", stats.Collected, stats.Cleaned)

	validated, counts := clean.FilterAndDedup(cleaned, p.minLen)
	stats.Validated = counts.Validated
	stats.Deduped = counts.Deduped
	log.Printf("[pipeline] validated=%d deduped=%d dropped_short=%d dropped_dup=%d",
		counts.Validated, counts.Deduped, counts.In-counts.Validated, counts.Validated-counts.Deduped)

	annotated := make([]domain.AnnotatedRecord, 0, len(validated))
	for _, r := range validated {
		annotated = append(annotated, p.ann.Annotate(r))
	}
	stats.Annotated = len(annotated)

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].RelevanceScore > annotated[j].RelevanceScore
	})
	log.Printf("[pipeline] annotated=%d", stats.Annotated)

	return annotated, stats
}
