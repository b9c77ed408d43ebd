package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"jobcorpus-engine/internal/domain"
)

// WriteRawCSV emits the collected batch, one row per record.
func WriteRawCSV(path string, records []domain.RawRecord) error {
	rows := [][]string{{"source", "title", "company", "description", "url", "type", "score"}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Source, r.Title, r.Company, r.Description, r.URL, r.Kind, strconv.Itoa(r.Score),
		})
	}
	return writeCSV(path, rows)
}

// WriteAnnotatedCSV emits the final dataset. Set-valued skill_tags are joined
// with ", " so each row stays flat.
func WriteAnnotatedCSV(path string, records []domain.AnnotatedRecord) error {
	rows := [][]string{{
		"source", "title", "company", "description", "url", "type", "score",
		"skill_tags", "experience_level", "content_type", "relevance_score",
		"is_remote", "company_size", "text_length", "has_requirements",
	}}
	for _, r := range records {
		rows = append(rows, []string{
			r.Source, r.Title, r.Company, r.Description, r.URL, r.Kind, strconv.Itoa(r.Score),
			strings.Join(r.SkillTags, ", "),
			r.ExperienceLevel,
			r.ContentType,
			strconv.FormatFloat(r.RelevanceScore, 'f', 2, 64),
			strconv.FormatBool(r.IsRemote),
			r.CompanySize,
			strconv.Itoa(r.TextLength),
			strconv.FormatBool(r.HasRequirements),
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
