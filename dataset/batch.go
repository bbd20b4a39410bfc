package dataset

import (
	"context"
	"sync"

	"github.com/RyanBlaney/ritmo-radar/beatmap"
	"github.com/RyanBlaney/ritmo-radar/features"
	"github.com/RyanBlaney/ritmo-radar/logging"
)

// Result pairs one document with its feature record or its failure. A
// failed document never aborts the batch; the caller decides what to do
// with it.
type Result struct {
	Doc    Document
	Record features.Record
	Err    error
}

// Runner extracts features from many documents with a fixed-size worker
// pool. Documents are independent, so workers share nothing but the job
// queue; each document's parse state lives and dies inside one worker
// call.
type Runner struct {
	workers int
	config  *features.Config
	logger  logging.Logger
}

// NewRunner creates a runner with the given worker count and aggregation
// config. Worker counts below one are clamped to one; a nil config falls
// back to defaults.
func NewRunner(workers int, config *features.Config) *Runner {
	if workers < 1 {
		workers = 1
	}
	if config == nil {
		config = features.DefaultConfig()
	}

	return &Runner{
		workers: workers,
		config:  config,
		logger: logging.WithFields(logging.Fields{
			"component": "batch_runner",
			"workers":   workers,
		}),
	}
}

// Run processes every document and returns results in completion order.
// Cancelling ctx stops feeding new documents; in-flight documents finish.
func (r *Runner) Run(ctx context.Context, docs []Document) []Result {
	jobs := make(chan Document)
	out := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				out <- r.processDocument(doc)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, doc := range docs {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]Result, 0, len(docs))
	for result := range out {
		if result.Err != nil {
			r.logger.Warn("skipping beatmap document", logging.Fields{
				"path":  result.Doc.Path,
				"error": result.Err.Error(),
			})
		}
		results = append(results, result)
	}
	return results
}

func (r *Runner) processDocument(doc Document) Result {
	parsed, err := beatmap.ParseFile(doc.Path)
	if err != nil {
		return Result{Doc: doc, Err: err}
	}

	aggregator := features.NewAggregator(r.config)
	mapFeatures, err := aggregator.Aggregate(parsed.Objects, parsed.Timing)
	if err != nil {
		return Result{Doc: doc, Err: err}
	}

	return Result{
		Doc: doc,
		Record: features.Record{
			Difficulty: parsed.Difficulty,
			Features:   mapFeatures,
			Label:      doc.Label,
		},
	}
}
