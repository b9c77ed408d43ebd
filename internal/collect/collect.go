// Package collect gathers raw records from the enabled public web APIs.
// Sources run best-effort: one failing API becomes a SourceFailure and fewer
// records, never an aborted batch.
package collect

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"jobcorpus-engine/internal/collect/github"
	"jobcorpus-engine/internal/collect/hackernews"
	"jobcorpus-engine/internal/collect/reddit"
	"jobcorpus-engine/internal/collect/stackoverflow"
	"jobcorpus-engine/internal/collect/types"
	"jobcorpus-engine/internal/collect/util"
	"jobcorpus-engine/internal/config"
	"jobcorpus-engine/internal/domain"
)

// RunOnce fans out over the enabled sources and merges their records in
// source-registration order, so identical per-source responses always produce
// the same batch. githubToken may be empty.
func RunOnce(ctx context.Context, cfg config.Config, githubToken string) ([]domain.RawRecord, []types.SourceFailure) {
	client := util.NewClient(cfg.Collect.RequestsPerSec, cfg.Collect.Burst)
	src := cfg.Collect.Sources

	var fetchers []types.Fetcher
	if src.GitHub.Enabled {
		fetchers = append(fetchers, github.New(github.Config{
			Queries: src.GitHub.Queries,
			Limit:   cfg.Collect.PerSourceLimit,
			Token:   githubToken,
		}, client))
	}
	if src.StackOverflow.Enabled {
		fetchers = append(fetchers, stackoverflow.New(stackoverflow.Config{
			Tags:  src.StackOverflow.Tags,
			Limit: cfg.Collect.PerSourceLimit,
		}, client))
	}
	if src.Reddit.Enabled {
		fetchers = append(fetchers, reddit.New(reddit.Config{
			Subreddits: src.Reddit.Subreddits,
			Limit:      cfg.Collect.PerSourceLimit,
		}, client))
	}
	if src.HackerNews.Enabled {
		fetchers = append(fetchers, hackernews.New(hackernews.Config{
			MaxStories: src.HackerNews.MaxStories,
			Keywords:   src.HackerNews.Keywords,
			Limit:      cfg.Collect.PerSourceLimit,
		}, client))
	}

	timeout := time.Duration(cfg.Collect.TimeoutSeconds) * time.Second

	results := make([]types.CollectResult, len(fetchers))
	failures := make([]types.SourceFailure, len(fetchers))

	var g errgroup.Group
	for i, f := range fetchers {
		i, f := i, f

		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			log.Printf("[%s] running...", f.Name())
			res, err := f.Fetch(fctx)
			if err != nil {
				log.Printf("[%s] error: %v", f.Name(), err)
				failures[i] = types.SourceFailure{Source: f.Name(), Err: err.Error()}
				return nil // best-effort: don't cancel siblings
			}
			results[i] = res
			log.Printf("[%s] collected=%d", f.Name(), len(res.Records))
			return nil
		})
	}
	_ = g.Wait()

	var records []domain.RawRecord
	var failed []types.SourceFailure
	for i := range fetchers {
		records = append(records, results[i].Records...)
		if failures[i].Source != "" {
			failed = append(failed, failures[i])
		}
	}

	log.Printf("[collect] total=%d sources=%d failed=%d", len(records), len(fetchers), len(failed))
	return records, failed
}
