package clean

import (
	"html"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"jobcorpus-engine/internal/config"
	"jobcorpus-engine/internal/domain"
)

var (
	tagLike    = regexp.MustCompile(`<[^>]+>`)
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?()/-]`)
	whitespace = regexp.MustCompile(`\s+`)
)

type abbrev struct {
	re  *regexp.Regexp
	out string
}

// Normalizer cleans raw text fields. All vocabularies come from config;
// the zero behavior (no abbreviations, no suffixes) is still a full clean.
type Normalizer struct {
	abbrevs  []abbrev
	suffixes map[string]bool // lowercased legal-entity suffixes
	titler   cases.Caser
}

func NewNormalizer(cfg config.Config) *Normalizer {
	n := &Normalizer{
		suffixes: make(map[string]bool, len(cfg.Cleaning.CompanySuffixes)),
		titler:   cases.Title(language.English),
	}

	// Sorted for a stable expansion order; the patterns are disjoint anyway.
	keys := make([]string, 0, len(cfg.Cleaning.TitleAbbreviations))
	for k := range cfg.Cleaning.TitleAbbreviations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b\.?`)
		n.abbrevs = append(n.abbrevs, abbrev{re: re, out: cfg.Cleaning.TitleAbbreviations[k]})
	}

	for _, s := range cfg.Cleaning.CompanySuffixes {
		n.suffixes[strings.ToLower(strings.TrimSuffix(s, "."))] = true
	}
	return n
}

// CleanText decodes HTML entities, drops tag-like substrings, strips characters
// outside the allow-list, and collapses whitespace. Running it on its own
// output is a no-op.
func (n *Normalizer) CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = tagLike.ReplaceAllString(s, " ")
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeTitle cleans, title-cases, and expands seniority abbreviations
// (Sr. -> Senior and friends, dot included).
func (n *Normalizer) NormalizeTitle(s string) string {
	s = n.titler.String(n.CleanText(s))
	for _, a := range n.abbrevs {
		s = a.re.ReplaceAllString(s, a.out)
	}
	return strings.TrimSpace(s)
}

// NormalizeCompany cleans, strips trailing legal-entity suffixes
// (case-insensitive, repeated so "Acme Company Inc." ends up "Acme"),
// and title-cases.
func (n *Normalizer) NormalizeCompany(s string) string {
	s = n.CleanText(s)
	for {
		words := strings.Fields(s)
		if len(words) == 0 {
			return ""
		}
		last := strings.ToLower(strings.TrimSuffix(words[len(words)-1], "."))
		if !n.suffixes[last] {
			break
		}
		s = strings.Join(words[:len(words)-1], " ")
	}
	return n.titler.String(s)
}

// Normalize rewrites the text fields of one raw record and attaches the dedup
// key. Missing fields were already empty strings; nothing here can fail.
func (n *Normalizer) Normalize(r domain.RawRecord) domain.CleanedRecord {
	title := n.NormalizeTitle(r.Title)
	company := n.NormalizeCompany(r.Company)

	return domain.CleanedRecord{
		Source:      strings.TrimSpace(r.Source),
		Title:       title,
		Company:     company,
		Description: n.CleanText(r.Description),
		URL:         strings.TrimSpace(r.URL),
		Kind:        strings.TrimSpace(r.Kind),
		Score:       r.Score,
		DedupKey:    DedupKey(title, company),
	}
}

// DedupKey is the case-insensitive record identity: normalized title|company.
func DedupKey(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(company))
}
