// Package annotate derives the training labels for validated records.
// Everything here is keyword/pattern driven off the configured vocabularies;
// annotation is total and never drops or rewrites a record.
package annotate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"jobcorpus-engine/internal/config"
	"jobcorpus-engine/internal/domain"
)

var (
	yearsRe     = regexp.MustCompile(`(\d+)[+\-\s]*years?`)
	employeesRe = regexp.MustCompile(`([\d,]+)\s*\+?\s*employees`)
)

type Annotator struct {
	cfg config.Config
}

func New(cfg config.Config) *Annotator {
	return &Annotator{cfg: cfg}
}

// Annotate labels one record. The text fields pass through untouched.
func (a *Annotator) Annotate(r domain.CleanedRecord) domain.AnnotatedRecord {
	text := strings.ToLower(r.Title + " " + r.Description)

	skills := a.skillTags(text)
	hasReq := containsAny(text, a.cfg.Annotate.RequirementCues)

	return domain.AnnotatedRecord{
		CleanedRecord:   r,
		SkillTags:       skills,
		ExperienceLevel: a.experienceLevel(text),
		ContentType:     a.contentType(r, text, len(skills)),
		RelevanceScore:  a.relevance(text, r.Description, hasReq),
		IsRemote:        containsAny(text, a.cfg.Annotate.RemoteKeywords),
		CompanySize:     a.companySize(r.Company, text),
		TextLength:      len([]rune(r.Description)),
		HasRequirements: hasReq,
	}
}

// skillTags returns the vocabulary tags found in the text, in vocabulary order.
func (a *Annotator) skillTags(text string) []string {
	tags := []string{}
	for _, rule := range a.cfg.Annotate.Skills {
		for _, term := range rule.Any {
			if strings.Contains(text, strings.ToLower(term)) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}
	return tags
}

// experienceLevel walks the configured tiers in order (Management first),
// first matching tier wins. When no tier matches, an explicit "N+ years"
// mention decides; otherwise Mid.
func (a *Annotator) experienceLevel(text string) string {
	for _, tier := range a.cfg.Annotate.ExperienceTiers {
		if containsAny(text, tier.Any) {
			return tier.Level
		}
	}

	if m := yearsRe.FindAllStringSubmatch(text, -1); len(m) > 0 {
		years := 0
		for _, g := range m {
			if v, err := strconv.Atoi(g[1]); err == nil && v > years {
				years = v
			}
		}
		switch {
		case years <= 2:
			return domain.ExperienceEntry
		case years <= 5:
			return domain.ExperienceMid
		default:
			return domain.ExperienceSenior
		}
	}

	return domain.ExperienceMid
}

// contentType assigns exactly one label under the fixed precedence
// JobDescription > InterviewQuestion > CareerAdvice > TechnicalDiscussion > CompanyInfo.
func (a *Annotator) contentType(r domain.CleanedRecord, text string, skillHits int) string {
	an := a.cfg.Annotate

	if containsAny(text, an.JobCues) {
		return domain.ContentJobDescription
	}

	if containsFold(an.QASources, r.Source) ||
		strings.Contains(r.Title, "?") ||
		containsAny(text, an.QuestionCues) {
		return domain.ContentInterviewQuestion
	}

	if containsFold(an.DiscussionSources, r.Source) && containsAny(text, an.AdviceCues) {
		return domain.ContentCareerAdvice
	}

	if skillHits >= 2 {
		return domain.ContentTechnicalDiscussion
	}

	return domain.ContentCompanyInfo
}

// relevance combines keyword density, content length, and a requirements
// bonus. Weights live in config; the result is clamped to [0,1] and rounded
// to two decimals.
func (a *Annotator) relevance(text, description string, hasReq bool) float64 {
	rel := a.cfg.Annotate.Relevance

	hits := 0
	for _, kw := range rel.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			hits++
		}
	}

	score := math.Min(float64(hits)/float64(rel.KeywordTarget), 1.0)
	score += math.Min(float64(len([]rune(description)))/float64(rel.LengthDivisor), rel.LengthBonusCap)
	if hasReq {
		score += rel.RequirementsBonus
	}

	score = math.Min(score, 1.0)
	return math.Round(score*100) / 100
}

// companySize buckets on name/description cues or an explicit employee count.
// No signal means Unknown, not a guess.
func (a *Annotator) companySize(company, text string) string {
	blob := strings.ToLower(company) + " " + text

	if containsAny(blob, a.cfg.Annotate.StartupCues) {
		return domain.SizeStartup
	}
	if containsAny(blob, a.cfg.Annotate.LargeCompanyCues) {
		return domain.SizeLarge
	}

	if m := employeesRe.FindStringSubmatch(blob); m != nil {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err == nil {
			switch {
			case n >= 1000:
				return domain.SizeLarge
			case n < 50:
				return domain.SizeStartup
			default:
				return domain.SizeMedium
			}
		}
	}

	return domain.SizeUnknown
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if t == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func containsFold(xs []string, s string) bool {
	for _, x := range xs {
		if strings.EqualFold(x, s) {
			return true
		}
	}
	return false
}
