package reddit

import (
	"context"
	"fmt"
	"log"

	"jobcorpus-engine/internal/collect/types"
	"jobcorpus-engine/internal/collect/util"
	"jobcorpus-engine/internal/domain"
)

type Config struct {
	Subreddits []string
	Limit      int // per subreddit
}

type Fetcher struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Fetcher {
	return &Fetcher{cfg: cfg, client: client}
}

func (f *Fetcher) Name() string { return "reddit" }

type listingResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				Title     string `json:"title"`
				Selftext  string `json:"selftext"`
				Permalink string `json:"permalink"`
				Score     int    `json:"score"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Fetch reads the hot listing of each configured subreddit via the public
// JSON endpoint. The subreddit stands in for the company field.
func (f *Fetcher) Fetch(ctx context.Context) (types.CollectResult, error) {
	var out []domain.RawRecord
	var lastErr error

	for _, sub := range f.cfg.Subreddits {
		apiURL := fmt.Sprintf("https://www.reddit.com/r/%s/hot.json?limit=%d", sub, f.cfg.Limit)

		var resp listingResponse
		if err := f.client.GetJSON(ctx, apiURL, nil, &resp); err != nil {
			log.Printf("[reddit] subreddit=%q err=%v", sub, err)
			lastErr = err
			continue
		}

		for _, child := range resp.Data.Children {
			p := child.Data
			out = append(out, domain.RawRecord{
				Source:      "Reddit",
				Title:       p.Title,
				Company:     "r/" + sub,
				Description: p.Selftext,
				URL:         "https://www.reddit.com" + p.Permalink,
				Kind:        "discussion",
				Score:       p.Score,
			})
		}
	}

	if len(out) == 0 && lastErr != nil {
		return types.CollectResult{Source: "Reddit"}, lastErr
	}
	return types.CollectResult{Source: "Reddit", Records: out}, nil
}
