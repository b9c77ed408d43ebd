package types

import (
	"context"

	"jobcorpus-engine/internal/domain"
)

// CollectResult is one source's contribution to the batch.
type CollectResult struct {
	Source  string
	Records []domain.RawRecord
}

// SourceFailure reports a source that produced nothing. The run continues with
// whatever the other sources collected.
type SourceFailure struct {
	Source string `json:"source"`
	Err    string `json:"error"`
}

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (CollectResult, error)
}
