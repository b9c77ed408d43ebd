package sink

import "jobcorpus-engine/internal/domain"

type sampleAnnotations struct {
	SkillTags       []string `json:"skill_tags"`
	ExperienceLevel string   `json:"experience_level"`
	ContentType     string   `json:"content_type"`
	RelevanceScore  float64  `json:"relevance_score"`
	IsRemote        bool     `json:"is_remote"`
	CompanySize     string   `json:"company_size"`
}

type sampleEntry struct {
	ID                 int               `json:"id"`
	Title              string            `json:"title"`
	Company            string            `json:"company"`
	DescriptionPreview string            `json:"description_preview"`
	Annotations        sampleAnnotations `json:"annotations"`
}

// WriteSample exports a simplified view of the top-n records (the input is
// already sorted by relevance) for manual label review.
func WriteSample(path string, records []domain.AnnotatedRecord, n int) error {
	if n > len(records) {
		n = len(records)
	}

	sample := make([]sampleEntry, 0, n)
	for i, r := range records[:n] {
		sample = append(sample, sampleEntry{
			ID:                 i + 1,
			Title:              r.Title,
			Company:            r.Company,
			DescriptionPreview: preview(r.Description, 200),
			Annotations: sampleAnnotations{
				SkillTags:       r.SkillTags,
				ExperienceLevel: r.ExperienceLevel,
				ContentType:     r.ContentType,
				RelevanceScore:  r.RelevanceScore,
				IsRemote:        r.IsRemote,
				CompanySize:     r.CompanySize,
			},
		})
	}

	return WriteJSON(path, sample)
}

func preview(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
