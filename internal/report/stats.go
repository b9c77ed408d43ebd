// Package report aggregates dataset statistics for the end-of-run summary.
package report

import (
	"log"
	"math"
	"sort"
	"strings"

	"jobcorpus-engine/internal/domain"
)

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalEntries     int            `json:"total_entries"`
	Sources          map[string]int `json:"sources"`
	UniqueCompanies  int            `json:"unique_companies"`
	AvgDescriptionLn float64        `json:"avg_description_length"`
	ExperienceLevels map[string]int `json:"experience_levels"`
	ContentTypes     map[string]int `json:"content_types"`
	CompanySizes     map[string]int `json:"company_sizes"`
	TopSkills        []SkillCount   `json:"top_skills"`
	AvgRelevance     float64        `json:"avg_relevance_score"`
	RemotePct        float64        `json:"remote_work_percentage"`
}

// Summarize walks the annotated set once. An empty set yields a zero summary,
// not an error.
func Summarize(records []domain.AnnotatedRecord) Summary {
	s := Summary{
		Sources:          map[string]int{},
		ExperienceLevels: map[string]int{},
		ContentTypes:     map[string]int{},
		CompanySizes:     map[string]int{},
		TopSkills:        []SkillCount{},
	}
	if len(records) == 0 {
		return s
	}

	s.TotalEntries = len(records)

	companies := map[string]bool{}
	skills := map[string]int{}
	totalLen, remote := 0, 0
	totalRelevance := 0.0

	for _, r := range records {
		s.Sources[r.Source]++
		s.ExperienceLevels[r.ExperienceLevel]++
		s.ContentTypes[r.ContentType]++
		s.CompanySizes[r.CompanySize]++
		companies[strings.ToLower(r.Company)] = true

		for _, sk := range r.SkillTags {
			skills[sk]++
		}

		totalLen += r.TextLength
		totalRelevance += r.RelevanceScore
		if r.IsRemote {
			remote++
		}
	}

	s.UniqueCompanies = len(companies)
	s.AvgDescriptionLn = round1(float64(totalLen) / float64(len(records)))
	s.AvgRelevance = round2(totalRelevance / float64(len(records)))
	s.RemotePct = round1(float64(remote) / float64(len(records)) * 100)
	s.TopSkills = topSkills(skills, 10)

	return s
}

// Log prints the summary in run-log form.
func (s Summary) Log() {
	log.Printf("[report] entries=%d companies=%d avg_desc_len=%.1f avg_relevance=%.2f remote=%.1f%%",
		s.TotalEntries, s.UniqueCompanies, s.AvgDescriptionLn, s.AvgRelevance, s.RemotePct)
	log.Printf("[report] sources=%v experience=%v content=%v sizes=%v",
		s.Sources, s.ExperienceLevels, s.ContentTypes, s.CompanySizes)

	names := make([]string, 0, len(s.TopSkills))
	for _, sc := range s.TopSkills {
		names = append(names, sc.Skill)
	}
	log.Printf("[report] top_skills=%v", names)
}

func topSkills(counts map[string]int, limit int) []SkillCount {
	out := make([]SkillCount, 0, len(counts))
	for sk, n := range counts {
		out = append(out, SkillCount{Skill: sk, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Skill < out[j].Skill
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
