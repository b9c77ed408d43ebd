package domain

// RawRecord is one collected text unit exactly as a source produced it.
// Only Title and Description are guaranteed; everything else is source-dependent.
type RawRecord struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Kind        string `json:"type,omitempty"` // repository/question/discussion/story
	Score       int    `json:"score,omitempty"`
}

// CleanedRecord is a RawRecord with its text fields normalized and a dedup key attached.
type CleanedRecord struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Kind        string `json:"type,omitempty"`
	Score       int    `json:"score,omitempty"`
	DedupKey    string `json:"dedup_key"`
}

// AnnotatedRecord adds the derived labels. Annotation never rewrites the text fields.
type AnnotatedRecord struct {
	CleanedRecord

	SkillTags       []string `json:"skill_tags"`
	ExperienceLevel string   `json:"experience_level"`
	ContentType     string   `json:"content_type"`
	RelevanceScore  float64  `json:"relevance_score"`
	IsRemote        bool     `json:"is_remote"`
	CompanySize     string   `json:"company_size"`
	TextLength      int      `json:"text_length"`
	HasRequirements bool     `json:"has_requirements"`
}
