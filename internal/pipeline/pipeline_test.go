package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobcorpus-engine/internal/config"
	"jobcorpus-engine/internal/domain"
	"jobcorpus-engine/internal/pipeline"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Cleaning.MinDescriptionLen = 10
	cfg.Cleaning.TitleAbbreviations = map[string]string{"Sr": "Senior", "Jr": "Junior"}
	cfg.Cleaning.CompanySuffixes = []string{"Inc", "LLC", "Corp"}

	an := &cfg.Annotate
	an.Skills = []config.Rule{
		{Tag: "Python", Any: []string{"python"}},
		{Tag: "Database", Any: []string{"sql"}},
	}
	an.ExperienceTiers = []config.Tier{
		{Level: domain.ExperienceManagement, Any: []string{"manager", "team lead", "director"}},
		{Level: domain.ExperienceSenior, Any: []string{"senior", "lead"}},
		{Level: domain.ExperienceEntry, Any: []string{"junior", "intern"}},
	}
	an.JobCues = []string{"requirements", "hiring"}
	an.QASources = []string{"StackOverflow"}
	an.DiscussionSources = []string{"Reddit"}
	an.AdviceCues = []string{"advice"}
	an.RemoteKeywords = []string{"remote", "work from home"}
	an.RequirementCues = []string{"requirements", "required"}
	an.Relevance.Keywords = []string{"software", "engineer", "python"}
	an.Relevance.KeywordTarget = 10
	an.Relevance.LengthDivisor = 1000
	an.Relevance.LengthBonusCap = 0.2
	an.Relevance.RequirementsBonus = 0.05

	return cfg
}

func TestRunScenario(t *testing.T) {
	p := pipeline.New(testConfig())

	out, stats := p.Run([]domain.RawRecord{{
		Title:       "Sr. Software Engineer",
		Company:     "Acme Inc.",
		Description: "We need 5+ years experience leading a team of engineers. Remote work available.",
	}})

	require.Len(t, out, 1)
	r := out[0]
	require.Equal(t, "Senior Software Engineer", r.Title)
	require.Equal(t, "Acme", r.Company)
	// "leading" hits the Senior tier ("lead"), not Management: the Management
	// tier only carries multiword lead titles.
	require.Equal(t, domain.ExperienceSenior, r.ExperienceLevel)
	require.True(t, r.IsRemote)
	require.Equal(t, pipeline.Stats{Collected: 1, Cleaned: 1, Validated: 1, Deduped: 1, Annotated: 1}, stats)
}

func TestRunDedupAcrossRawDuplicates(t *testing.T) {
	p := pipeline.New(testConfig())

	out, stats := p.Run([]domain.RawRecord{
		{Title: "Backend Engineer", Company: "Acme Inc.", Description: "First posting, original text."},
		{Title: "backend engineer", Company: "ACME", Description: "Second posting, different text."},
	})

	require.Len(t, out, 1)
	require.Equal(t, "First posting, original text.", out[0].Description)
	require.Equal(t, 2, stats.Validated)
	require.Equal(t, 1, stats.Deduped)
}

func TestRunDropsShortDescriptions(t *testing.T) {
	p := pipeline.New(testConfig())

	out, stats := p.Run([]domain.RawRecord{
		{Title: "Engineer", Company: "Acme", Description: "short"},
		{Title: "Engineer Two", Company: "Acme", Description: "A description that clears the bar."},
	})

	require.Len(t, out, 1)
	require.Equal(t, "Engineer Two", out[0].Title)
	require.Equal(t, pipeline.Stats{Collected: 2, Cleaned: 2, Validated: 1, Deduped: 1, Annotated: 1}, stats)
}

func TestRunEmptyInput(t *testing.T) {
	p := pipeline.New(testConfig())

	out, stats := p.Run(nil)
	require.NotNil(t, out)
	require.Empty(t, out)
	require.Equal(t, pipeline.Stats{}, stats)
}

func TestRunSortsByRelevance(t *testing.T) {
	p := pipeline.New(testConfig())

	out, _ := p.Run([]domain.RawRecord{
		{Title: "Gardener", Company: "Greens", Description: "Water plants and trim hedges."},
		{Title: "Software Engineer", Company: "Acme", Description: "Software engineer writing python. Requirements inside."},
	})

	require.Len(t, out, 2)
	require.Equal(t, "Software Engineer", out[0].Title)
	require.GreaterOrEqual(t, out[0].RelevanceScore, out[1].RelevanceScore)
}

func TestRunDeterministic(t *testing.T) {
	p := pipeline.New(testConfig())

	raw := []domain.RawRecord{
		{Source: "Reddit", Title: "Need advice?", Company: "r/jobs", Description: "Some career advice requested here."},
		{Source: "GitHub", Title: "interview-handbook", Company: "octocat", Description: "A collection of questions, python and sql inside."},
	}

	a, _ := p.Run(raw)
	b, _ := p.Run(raw)
	require.Equal(t, a, b)
}
