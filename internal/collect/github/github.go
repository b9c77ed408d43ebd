package github

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"jobcorpus-engine/internal/collect/types"
	"jobcorpus-engine/internal/collect/util"
	"jobcorpus-engine/internal/domain"
)

type Config struct {
	Queries []string
	Limit   int    // per query
	Token   string // optional; raises the search rate limit
}

type Fetcher struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Fetcher {
	return &Fetcher{cfg: cfg, client: client}
}

func (f *Fetcher) Name() string { return "github" }

type searchResponse struct {
	Items []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		HTMLURL     string `json:"html_url"`
		Owner       struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"items"`
}

// Fetch searches job-related repositories per configured query. A failing
// query is logged and skipped; the source only fails when every query fails.
func (f *Fetcher) Fetch(ctx context.Context) (types.CollectResult, error) {
	var hdr http.Header
	if f.cfg.Token != "" {
		hdr = http.Header{"Authorization": []string{"Bearer " + f.cfg.Token}}
	}

	var out []domain.RawRecord
	var lastErr error

	for _, q := range f.cfg.Queries {
		apiURL := fmt.Sprintf(
			"https://api.github.com/search/repositories?q=%s&sort=stars&order=desc&per_page=%d",
			url.QueryEscape(q), f.cfg.Limit)

		var resp searchResponse
		if err := f.client.GetJSON(ctx, apiURL, hdr, &resp); err != nil {
			log.Printf("[github] query=%q err=%v", q, err)
			lastErr = err
			continue
		}

		for _, repo := range resp.Items {
			out = append(out, domain.RawRecord{
				Source:      "GitHub",
				Title:       repo.Name,
				Company:     repo.Owner.Login,
				Description: repo.Description,
				URL:         repo.HTMLURL,
				Kind:        "repository",
			})
		}
	}

	if len(out) == 0 && lastErr != nil {
		return types.CollectResult{Source: "GitHub"}, lastErr
	}
	return types.CollectResult{Source: "GitHub", Records: out}, nil
}
