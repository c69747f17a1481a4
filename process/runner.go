// Package process drives a full run: read records, feed the engine, keep
// going past bad rows, and summarize what happened.
package process

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matheusgomes28/transactions/engine"
	"github.com/matheusgomes28/transactions/ingest"
	"github.com/matheusgomes28/transactions/internal/id"
)

// Result summarizes one processing run.
type Result struct {
	// RunID tags every log line of this run.
	RunID string
	// Processed counts transactions the engine applied successfully.
	Processed int
	// Rejected counts well-formed transactions the engine refused.
	Rejected int
	// Skipped counts input records that could not be parsed.
	Skipped int
}

// Runner ties the ingest reader to an engine. Every record error and engine
// rejection is logged and counted, never fatal: a transaction stream is a
// series of independent submissions and one bad record must not sink the
// rest.
type Runner struct {
	Engine *engine.Engine
	Log    *log.Logger
}

// Run consumes src to the end and returns the run summary. The only errors
// returned are a missing engine and underlying reader I/O failures;
// per-record problems are counted in the Result instead.
func (r *Runner) Run(src io.Reader) (Result, error) {
	if r.Engine == nil {
		return Result{}, fmt.Errorf("process: Engine is required")
	}

	logger := r.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	res := Result{RunID: id.New()}
	logger = logger.With("run_id", res.RunID)

	reader := ingest.NewReader(src)
	for {
		tx, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var recErr *ingest.RecordError
			if errors.As(err, &recErr) {
				res.Skipped++
				logger.Warn("skipping malformed record", "line", recErr.Line, "err", recErr.Err)
				continue
			}
			return res, fmt.Errorf("read transactions: %w", err)
		}

		if err := r.Engine.Handle(tx); err != nil {
			res.Rejected++
			logger.Warn("transaction rejected",
				"kind", tx.Kind.String(), "tx", tx.TxID, "client", tx.ClientID, "err", err)
			continue
		}
		res.Processed++
	}

	logger.Info("run complete",
		"processed", res.Processed, "rejected", res.Rejected, "skipped", res.Skipped)
	return res, nil
}
