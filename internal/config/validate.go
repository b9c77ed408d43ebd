package config

import (
	"errors"
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes the term lists and checks the rule
// tables. The returned copy is what the pipeline should run with.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Cleaning.CompanySuffixes = trimList(out.Cleaning.CompanySuffixes)
	out.Annotate.RemoteKeywords = trimList(out.Annotate.RemoteKeywords)
	out.Annotate.RequirementCues = trimList(out.Annotate.RequirementCues)
	out.Annotate.JobCues = trimList(out.Annotate.JobCues)
	out.Annotate.QuestionCues = trimList(out.Annotate.QuestionCues)
	out.Annotate.AdviceCues = trimList(out.Annotate.AdviceCues)
	out.Annotate.StartupCues = trimList(out.Annotate.StartupCues)
	out.Annotate.LargeCompanyCues = trimList(out.Annotate.LargeCompanyCues)
	out.Annotate.Relevance.Keywords = trimList(out.Annotate.Relevance.Keywords)

	s := out.Collect.Sources
	if !s.GitHub.Enabled && !s.StackOverflow.Enabled && !s.Reddit.Enabled && !s.HackerNews.Enabled {
		res.addWarn("no sources enabled; the run will produce an empty dataset")
	}

	checkRules := func(name string, rules []Rule) {
		for i, r := range rules {
			if r.Tag == "" {
				res.addErr("%s[%d].tag is required", name, i)
			}
			if len(r.Any) == 0 {
				res.addErr("%s[%d].any must have at least 1 term", name, i)
			}
			for j, term := range r.Any {
				if strings.TrimSpace(term) == "" {
					res.addErr("%s[%d].any[%d] cannot be empty", name, i, j)
				}
			}
		}
	}
	checkRules("annotate.skills", out.Annotate.Skills)

	for i, tier := range out.Annotate.ExperienceTiers {
		if tier.Level == "" {
			res.addErr("annotate.experience_tiers[%d].level is required", i)
		}
		if len(tier.Any) == 0 {
			res.addErr("annotate.experience_tiers[%d].any must have at least 1 term", i)
		}
	}

	if len(out.Annotate.Skills) == 0 {
		res.addWarn("annotate.skills is empty; skill_tags will always be empty")
	}
	if len(out.Annotate.Relevance.Keywords) == 0 {
		res.addWarn("annotate.relevance.keywords is empty; relevance will come from length alone")
	}
	if out.Annotate.Relevance.LengthBonusCap > 1 {
		res.addErr("annotate.relevance.length_bonus_cap must be <= 1")
	}

	if s.GitHub.Enabled && len(s.GitHub.Queries) == 0 {
		res.addErr("collect.sources.github.queries is required when github is enabled")
	}
	if s.StackOverflow.Enabled && len(s.StackOverflow.Tags) == 0 {
		res.addErr("collect.sources.stackoverflow.tags is required when stackoverflow is enabled")
	}
	if s.Reddit.Enabled && len(s.Reddit.Subreddits) == 0 {
		res.addErr("collect.sources.reddit.subreddits is required when reddit is enabled")
	}

	return out, res
}

// Validate is the hard-failure form used at startup.
func Validate(cfg Config) error {
	_, res := NormalizeAndValidate(cfg)
	if res.OK() {
		return nil
	}
	return errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
}
