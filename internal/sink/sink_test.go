package sink_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jobcorpus-engine/internal/domain"
	"jobcorpus-engine/internal/sink"
)

func annotated(title string, score float64) domain.AnnotatedRecord {
	return domain.AnnotatedRecord{
		CleanedRecord: domain.CleanedRecord{
			Source:      "GitHub",
			Title:       title,
			Company:     "Acme",
			Description: "A plain description.",
			URL:         "https://example.com",
			Kind:        "repository",
		},
		SkillTags:       []string{"Python", "DevOps"},
		ExperienceLevel: domain.ExperienceMid,
		ContentType:     domain.ContentCompanyInfo,
		RelevanceScore:  score,
		CompanySize:     domain.SizeUnknown,
		TextLength:      20,
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	in := []domain.AnnotatedRecord{annotated("Engineer", 0.42)}
	require.NoError(t, sink.WriteJSON(path, in))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []domain.AnnotatedRecord
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, in, out)

	// no stray tmp file after the rename
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestWriteJSONFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, sink.WriteJSON(path, []domain.AnnotatedRecord{annotated("Engineer", 0.42)}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(b)
	for _, field := range []string{
		`"type"`, `"skill_tags"`, `"experience_level"`, `"content_type"`,
		`"relevance_score"`, `"is_remote"`, `"company_size"`, `"text_length"`, `"has_requirements"`,
	} {
		require.Contains(t, s, field)
	}
}

func TestWriteRawCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.csv")

	records := []domain.RawRecord{{
		Source:      "Reddit",
		Title:       "Need advice",
		Company:     "r/jobs",
		Description: "line one\nline two, with a comma",
		URL:         "https://reddit.com/x",
		Kind:        "discussion",
		Score:       42,
	}}
	require.NoError(t, sink.WriteRawCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"source", "title", "company", "description", "url", "type", "score"}, rows[0])
	require.Equal(t, "line one\nline two, with a comma", rows[1][3])
	require.Equal(t, "42", rows[1][6])
}

func TestWriteAnnotatedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotated.csv")
	require.NoError(t, sink.WriteAnnotatedCSV(path, []domain.AnnotatedRecord{annotated("Engineer", 0.425)}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 15, len(rows[0]))

	row := rows[1]
	require.Equal(t, "Python, DevOps", row[7])
	require.Equal(t, "0.42", row[10]) // fixed 2 decimals
	require.Equal(t, "false", row[11])
	require.Equal(t, "20", row[13])
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")

	long := annotated("Engineer", 0.9)
	long.Description = strings.Repeat("x", 250)
	records := []domain.AnnotatedRecord{long, annotated("Second", 0.5), annotated("Third", 0.1)}

	require.NoError(t, sink.WriteSample(path, records, 2))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var sample []struct {
		ID                 int    `json:"id"`
		Title              string `json:"title"`
		DescriptionPreview string `json:"description_preview"`
		Annotations        struct {
			RelevanceScore float64 `json:"relevance_score"`
		} `json:"annotations"`
	}
	require.NoError(t, json.Unmarshal(b, &sample))
	require.Len(t, sample, 2)
	require.Equal(t, 1, sample[0].ID)
	require.Equal(t, "Engineer", sample[0].Title)
	require.Equal(t, strings.Repeat("x", 200)+"...", sample[0].DescriptionPreview)
	require.InDelta(t, 0.9, sample[0].Annotations.RelevanceScore, 1e-9)
}

func TestWriteSampleShortSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, sink.WriteSample(path, []domain.AnnotatedRecord{annotated("Only", 0.3)}, 20))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var sample []json.RawMessage
	require.NoError(t, json.Unmarshal(b, &sample))
	require.Len(t, sample, 1)
}

func TestLockDataDir(t *testing.T) {
	dir := t.TempDir()

	lock, err := sink.LockDataDir(dir)
	require.NoError(t, err)

	_, err = sink.LockDataDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "locked by another run")

	require.NoError(t, lock.Unlock())

	again, err := sink.LockDataDir(dir)
	require.NoError(t, err)
	require.NoError(t, again.Unlock())
}
