package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to categorised report errors so callers can branch on
// the failure mode without string matching.
const (
	reportInvalidCode  = "REPORT_REQUEST_INVALID"
	reportCanceledCode = "REPORT_CANCELED"
	reportTimeoutCode  = "REPORT_TIMEOUT"
	reportFailedCode   = "REPORT_GENERATION_FAILED"
)

// wrapRequestError tags a rejected report request. Already-categorised
// errors pass through untouched.
func wrapRequestError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "report request invalid").
		WithTextCode(reportInvalidCode)
}

// wrapContextError distinguishes a caller cancellation from the handler's
// own deadline; everything else a dead context produces counts as a
// cancellation too.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return goerrors.Wrap(err, goerrors.CategoryCommand, "report timed out").
			WithTextCode(reportTimeoutCode)
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "report cancelled").
		WithTextCode(reportCanceledCode)
}

// wrapReportError tags a failure while the report was being generated or
// written.
func wrapReportError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "report generation failed").
		WithTextCode(reportFailedCode)
}
