package stackoverflow

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"jobcorpus-engine/internal/collect/types"
	"jobcorpus-engine/internal/collect/util"
	"jobcorpus-engine/internal/domain"
)

type Config struct {
	Tags  []string
	Limit int // per tag
}

type Fetcher struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Fetcher {
	return &Fetcher{cfg: cfg, client: client}
}

func (f *Fetcher) Name() string { return "stackoverflow" }

type questionsResponse struct {
	Items []struct {
		Title string `json:"title"`
		Body  string `json:"body"`
		Link  string `json:"link"`
		Score int    `json:"score"`
	} `json:"items"`
}

// Fetch pulls top-voted questions per configured tag. Bodies arrive as HTML
// and are flattened to text here; the Q&A site has no company, so records
// carry the community placeholder.
func (f *Fetcher) Fetch(ctx context.Context) (types.CollectResult, error) {
	var out []domain.RawRecord
	var lastErr error

	for _, tag := range f.cfg.Tags {
		apiURL := fmt.Sprintf(
			"https://api.stackexchange.com/2.3/questions?order=desc&sort=votes&tagged=%s&site=stackoverflow&pagesize=%d&filter=withbody",
			url.QueryEscape(tag), f.cfg.Limit)

		var resp questionsResponse
		if err := f.client.GetJSON(ctx, apiURL, nil, &resp); err != nil {
			log.Printf("[stackoverflow] tag=%q err=%v", tag, err)
			lastErr = err
			continue
		}

		for _, q := range resp.Items {
			out = append(out, domain.RawRecord{
				Source:      "StackOverflow",
				Title:       q.Title,
				Company:     "Community",
				Description: util.FlattenHTML(q.Body),
				URL:         q.Link,
				Kind:        "question",
				Score:       q.Score,
			})
		}
	}

	if len(out) == 0 && lastErr != nil {
		return types.CollectResult{Source: "StackOverflow"}, lastErr
	}
	return types.CollectResult{Source: "StackOverflow", Records: out}, nil
}
