package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"jobcorpus-engine/internal/collect"
	"jobcorpus-engine/internal/collect/types"
	"jobcorpus-engine/internal/config"
	"jobcorpus-engine/internal/pipeline"
	"jobcorpus-engine/internal/report"
	"jobcorpus-engine/internal/secrets"
	"jobcorpus-engine/internal/sink"
)

type runReport struct {
	Stats          pipeline.Stats        `json:"stats"`
	SourceFailures []types.SourceFailure `json:"source_failures"`
	Summary        report.Summary        `json:"summary"`
}

func main() {
	if len(os.Args) > 1 {
		if err := runSubcommand(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Data dir: use env if provided, else local folder.
	dataDir := os.Getenv("JOBCORPUS_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, w := range validation.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !validation.OK() {
		for _, e := range validation.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config validation failed (%s)", userCfgPath)
	}
	cfg.App.DataDir = dataDir

	lock, err := sink.LockDataDir(dataDir)
	if err != nil {
		log.Fatal(err)
	}
	defer lock.Unlock()

	ctx := context.Background()

	raw, failures := collect.RunOnce(ctx, cfg, secrets.GetGitHubToken())
	for _, f := range failures {
		log.Printf("[collect] source=%s unavailable: %s", f.Source, f.Err)
	}

	annotated, stats := pipeline.New(cfg).Run(raw)
	summary := report.Summarize(annotated)
	summary.Log()

	outputs := []struct {
		path  string
		write func(string) error
	}{
		{filepath.Join(dataDir, "raw_records.json"), func(p string) error { return sink.WriteJSON(p, raw) }},
		{filepath.Join(dataDir, "raw_records.csv"), func(p string) error { return sink.WriteRawCSV(p, raw) }},
		{filepath.Join(dataDir, "annotated_records.json"), func(p string) error { return sink.WriteJSON(p, annotated) }},
		{filepath.Join(dataDir, "annotated_records.csv"), func(p string) error { return sink.WriteAnnotatedCSV(p, annotated) }},
		{filepath.Join(dataDir, "sample_annotations.json"), func(p string) error {
			return sink.WriteSample(p, annotated, cfg.Output.SampleSize)
		}},
		{filepath.Join(dataDir, "run_report.json"), func(p string) error {
			return sink.WriteJSON(p, runReport{Stats: stats, SourceFailures: failures, Summary: summary})
		}},
	}
	for _, out := range outputs {
		if err := out.write(out.path); err != nil {
			log.Fatalf("write %s: %v", out.path, err)
		}
		log.Printf("[sink] wrote %s", out.path)
	}

	log.Printf("[engine] done collected=%d annotated=%d", stats.Collected, stats.Annotated)
}

func runSubcommand(args []string) error {
	switch args[0] {
	case "set-token":
		if len(args) != 2 {
			return fmt.Errorf("usage: engine set-token <github-token>")
		}
		if err := secrets.SetGitHubToken(args[1]); err != nil {
			return err
		}
		log.Print("[secrets] github token stored in keychain")
		return nil
	case "delete-token":
		if err := secrets.DeleteGitHubToken(); err != nil {
			return err
		}
		log.Print("[secrets] github token removed")
		return nil
	default:
		return fmt.Errorf("unknown command %q (want set-token or delete-token)", args[0])
	}
}
