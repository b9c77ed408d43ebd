package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Rule maps a vocabulary tag to the terms that trigger it.
type Rule struct {
	Tag string   `yaml:"tag"`
	Any []string `yaml:"any"`
}

// Tier is one experience-level bucket; tiers are checked in list order,
// first hit wins.
type Tier struct {
	Level string   `yaml:"level"`
	Any   []string `yaml:"any"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Collect struct {
		PerSourceLimit int     `yaml:"per_source_limit"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`

		Sources struct {
			GitHub struct {
				Enabled bool     `yaml:"enabled"`
				Queries []string `yaml:"queries"`
			} `yaml:"github"`
			StackOverflow struct {
				Enabled bool     `yaml:"enabled"`
				Tags    []string `yaml:"tags"`
			} `yaml:"stackoverflow"`
			Reddit struct {
				Enabled    bool     `yaml:"enabled"`
				Subreddits []string `yaml:"subreddits"`
			} `yaml:"reddit"`
			HackerNews struct {
				Enabled    bool     `yaml:"enabled"`
				MaxStories int      `yaml:"max_stories"`
				Keywords   []string `yaml:"keywords"`
			} `yaml:"hackernews"`
		} `yaml:"sources"`
	} `yaml:"collect"`

	Cleaning struct {
		MinDescriptionLen  int               `yaml:"min_description_len"`
		TitleAbbreviations map[string]string `yaml:"title_abbreviations"`
		CompanySuffixes    []string          `yaml:"company_suffixes"`
	} `yaml:"cleaning"`

	Annotate struct {
		Skills          []Rule `yaml:"skills"`
		ExperienceTiers []Tier `yaml:"experience_tiers"`

		JobCues           []string `yaml:"job_cues"`
		QuestionCues      []string `yaml:"question_cues"`
		AdviceCues        []string `yaml:"advice_cues"`
		QASources         []string `yaml:"qa_sources"`
		DiscussionSources []string `yaml:"discussion_sources"`

		RemoteKeywords  []string `yaml:"remote_keywords"`
		RequirementCues []string `yaml:"requirement_cues"`

		StartupCues      []string `yaml:"startup_cues"`
		LargeCompanyCues []string `yaml:"large_company_cues"`

		Relevance struct {
			Keywords          []string `yaml:"keywords"`
			KeywordTarget     int      `yaml:"keyword_target"`
			LengthDivisor     int      `yaml:"length_divisor"`
			LengthBonusCap    float64  `yaml:"length_bonus_cap"`
			RequirementsBonus float64  `yaml:"requirements_bonus"`
		} `yaml:"relevance"`
	} `yaml:"annotate"`

	Output struct {
		SampleSize int `yaml:"sample_size"`
	} `yaml:"output"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.App.DataDir == "" {
		c.App.DataDir = "data"
	}
	if c.Collect.PerSourceLimit <= 0 {
		c.Collect.PerSourceLimit = 15
	}
	if c.Collect.TimeoutSeconds <= 0 {
		c.Collect.TimeoutSeconds = 120
	}
	if c.Collect.RequestsPerSec <= 0 {
		c.Collect.RequestsPerSec = 1
	}
	if c.Collect.Burst <= 0 {
		c.Collect.Burst = 1
	}
	if c.Cleaning.MinDescriptionLen <= 0 {
		c.Cleaning.MinDescriptionLen = 10
	}
	if c.Annotate.Relevance.KeywordTarget <= 0 {
		c.Annotate.Relevance.KeywordTarget = 10
	}
	if c.Annotate.Relevance.LengthDivisor <= 0 {
		c.Annotate.Relevance.LengthDivisor = 1000
	}
	if c.Annotate.Relevance.LengthBonusCap <= 0 {
		c.Annotate.Relevance.LengthBonusCap = 0.2
	}
	if c.Output.SampleSize <= 0 {
		c.Output.SampleSize = 20
	}
}
