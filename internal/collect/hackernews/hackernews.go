package hackernews

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobcorpus-engine/internal/collect/types"
	"jobcorpus-engine/internal/collect/util"
	"jobcorpus-engine/internal/domain"
)

type Config struct {
	MaxStories int      // how many top stories to scan
	Keywords   []string // title must mention one to count as job-related
	Limit      int      // stop after this many kept records
}

type Fetcher struct {
	cfg    Config
	client *util.Client
}

func New(cfg Config, client *util.Client) *Fetcher {
	return &Fetcher{cfg: cfg, client: client}
}

func (f *Fetcher) Name() string { return "hackernews" }

type item struct {
	Title string `json:"title"`
	By    string `json:"by"`
	Text  string `json:"text"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}

// Fetch scans the top-story list and keeps stories whose titles mention a
// job keyword. Item fetch errors are skipped; only a dead story list fails
// the source.
func (f *Fetcher) Fetch(ctx context.Context) (types.CollectResult, error) {
	var ids []int64
	if err := f.client.GetJSON(ctx, "https://hacker-news.firebaseio.com/v0/topstories.json", nil, &ids); err != nil {
		return types.CollectResult{Source: "HackerNews"}, err
	}
	if len(ids) > f.cfg.MaxStories {
		ids = ids[:f.cfg.MaxStories]
	}

	var out []domain.RawRecord
	for _, id := range ids {
		if len(out) >= f.cfg.Limit {
			break
		}

		var st item
		itemURL := fmt.Sprintf("https://hacker-news.firebaseio.com/v0/item/%d.json", id)
		if err := f.client.GetJSON(ctx, itemURL, nil, &st); err != nil {
			log.Printf("[hackernews] item=%d err=%v", id, err)
			continue
		}

		if !titleMatches(st.Title, f.cfg.Keywords) {
			continue
		}

		company := st.By
		if company == "" {
			company = "Anonymous"
		}

		out = append(out, domain.RawRecord{
			Source:      "HackerNews",
			Title:       st.Title,
			Company:     company,
			Description: util.FlattenHTML(st.Text),
			URL:         st.URL,
			Kind:        "story",
			Score:       st.Score,
		})
	}

	return types.CollectResult{Source: "HackerNews", Records: out}, nil
}

func titleMatches(title string, keywords []string) bool {
	low := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(low, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
