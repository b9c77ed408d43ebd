package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobcorpus-engine/internal/domain"
	"jobcorpus-engine/internal/report"
)

func rec(source, company, level, content, size string, skills []string, textLen int, relevance float64, remote bool) domain.AnnotatedRecord {
	return domain.AnnotatedRecord{
		CleanedRecord:   domain.CleanedRecord{Source: source, Company: company},
		SkillTags:       skills,
		ExperienceLevel: level,
		ContentType:     content,
		CompanySize:     size,
		TextLength:      textLen,
		RelevanceScore:  relevance,
		IsRemote:        remote,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := report.Summarize(nil)

	require.Equal(t, 0, s.TotalEntries)
	require.NotNil(t, s.Sources)
	require.NotNil(t, s.TopSkills)
	require.Empty(t, s.TopSkills)
	require.Equal(t, 0.0, s.AvgRelevance)
	require.Equal(t, 0.0, s.RemotePct)
}

func TestSummarize(t *testing.T) {
	records := []domain.AnnotatedRecord{
		rec("GitHub", "Acme", domain.ExperienceSenior, domain.ContentJobDescription, domain.SizeLarge,
			[]string{"Python", "DevOps"}, 100, 0.8, true),
		rec("Reddit", "ACME", domain.ExperienceMid, domain.ContentCareerAdvice, domain.SizeUnknown,
			[]string{"Python"}, 50, 0.4, false),
		rec("GitHub", "Globex", domain.ExperienceMid, domain.ContentJobDescription, domain.SizeUnknown,
			nil, 150, 0.6, true),
	}

	s := report.Summarize(records)

	require.Equal(t, 3, s.TotalEntries)
	require.Equal(t, map[string]int{"GitHub": 2, "Reddit": 1}, s.Sources)
	// company uniqueness is case-insensitive
	require.Equal(t, 2, s.UniqueCompanies)
	require.Equal(t, 100.0, s.AvgDescriptionLn)
	require.Equal(t, map[string]int{domain.ExperienceSenior: 1, domain.ExperienceMid: 2}, s.ExperienceLevels)
	require.Equal(t, map[string]int{domain.ContentJobDescription: 2, domain.ContentCareerAdvice: 1}, s.ContentTypes)
	require.InDelta(t, 0.6, s.AvgRelevance, 1e-9)
	require.InDelta(t, 66.7, s.RemotePct, 1e-9)

	require.Equal(t, []report.SkillCount{
		{Skill: "Python", Count: 2},
		{Skill: "DevOps", Count: 1},
	}, s.TopSkills)
}

func TestTopSkillsOrderAndLimit(t *testing.T) {
	var records []domain.AnnotatedRecord
	// 12 distinct single-count skills plus one dominant skill
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	for _, n := range names {
		records = append(records, rec("GitHub", "Acme", domain.ExperienceMid, domain.ContentCompanyInfo,
			domain.SizeUnknown, []string{n, "Python"}, 10, 0.5, false))
	}

	s := report.Summarize(records)

	require.Len(t, s.TopSkills, 10)
	require.Equal(t, report.SkillCount{Skill: "Python", Count: 12}, s.TopSkills[0])
	// ties broken alphabetically
	require.Equal(t, "A", s.TopSkills[1].Skill)
	require.Equal(t, "B", s.TopSkills[2].Skill)
}
