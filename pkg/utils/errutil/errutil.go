package errutil

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/utils/logging"
)

// HandleSkip logs a recovered per-entry failure and discards it. The
// ingestion pipeline skips malformed entries instead of aborting, but every
// skip must leave a diagnostic trail with its goerr context values.
func HandleSkip(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Warn(msg,
			"error", err.Error(),
			"values", ge.Values(),
		)
	} else {
		logger.Warn(msg, "error", err.Error())
	}
}

// Handle logs a fatal error with full goerr context and returns it unchanged
// so callers can propagate it up the pipeline.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	return err
}
