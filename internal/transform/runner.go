package transform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"dining_sync/internal/domain"
	"dining_sync/internal/source/dining"
)

const DefaultWorkers = 4

// Failure is one record that could not be transformed.
type Failure struct {
	Index     int
	CornellID int64
	Name      string
	Err       error
}

// AggregateError reports every failed record of a run. Partial holds the
// records that did transform, in input order.
type AggregateError struct {
	Failures []Failure
	Partial  []domain.Eatery
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to transform %d eatery(ies):", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\nEatery %q: %v", f.Name, f.Err)
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// Runner transforms upstream eateries on a bounded pool of workers.
type Runner struct {
	transformer *Transformer
	workers     int
	logger      *slog.Logger
}

func NewRunner(transformer *Transformer, workers int, logger *slog.Logger) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{
		transformer: transformer,
		workers:     workers,
		logger:      logger.With("component", "transform_runner"),
	}
}

// TransformAll attempts every record even after failures. Results keep the
// input order.
func (r *Runner) TransformAll(ctx context.Context, raws []dining.RawEatery) ([]domain.Eatery, error) {
	results := make([]domain.Eatery, len(raws))
	errs := make([]error, len(raws))

	var g errgroup.Group
	g.SetLimit(r.workers)

	for i := range raws {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			eatery, err := r.transformer.Transform(UpstreamRecord(raws[i]))
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = eatery
			return nil
		})
	}
	_ = g.Wait()

	eateries := make([]domain.Eatery, 0, len(raws))
	var failures []Failure
	for i, err := range errs {
		if err != nil {
			failures = append(failures, Failure{
				Index:     i,
				CornellID: raws[i].ID,
				Name:      raws[i].Name,
				Err:       err,
			})
			continue
		}
		eateries = append(eateries, results[i])
	}

	if len(failures) > 0 {
		r.logger.Error("transform failed",
			"failed", len(failures),
			"succeeded", len(eateries),
			"total", len(raws),
		)
		return nil, &AggregateError{Failures: failures, Partial: eateries}
	}

	r.logger.Debug("transform complete", "count", len(eateries), "workers", r.workers)
	return eateries, nil
}
