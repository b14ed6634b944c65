// Package errors provides structured, coded errors for the superstar draft.
//
// Every failure the draft core can report is a local, recoverable condition
// surfaced as an *Error carrying a Code, a user-facing Message, an optional
// Cause and free-form Meta. Nothing in the core panics on bad input.
//
// # Basic Usage
//
//	err := errors.NotFoundf("superstar %q not found", name)
//	err := errors.ResourceExhausted("insufficient budget").
//	    WithMeta("cost", cost).
//	    WithMeta("budget", budget)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist roster snapshot")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // nothing to restore
//	}
//	code := errors.GetCode(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", s.Name, vb)
//	errors.ValidateEnum("class", string(s.Class), classes, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Exit Statuses
//
// The CLI turns codes into process exit statuses with Code.ExitCode.
//
// # Error Codes
//
//   - NotFound: superstar absent from the catalog or the roster
//   - AlreadyExists: superstar already drafted
//   - ResourceExhausted: superstar costs more than the remaining budget
//   - InvalidArgument: malformed input, catalog or snapshot
//   - FailedPrecondition: operation requires state that is missing
//   - Unavailable: a collaborator (redis, roster file) could not be reached
//   - DataLoss: a persisted snapshot could not be decoded
//   - Internal: anything else
package errors
