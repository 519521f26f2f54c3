// Package search holds the primitives shared by every gridpath strategy:
// the Outcome model, the step stream, functional options, predecessor
// path reconstruction, and the Solver capability.
//
// Outcome:
//
//   - Every search returns a Result. Status is one of Found, NotFound
//     (frontier or stack exhausted), InvalidEndpoint (start or goal outside
//     the grid or blocked), or Aborted (context, hook error, or step limit).
//   - Result.Err converts the status to a sentinel error for callers that
//     prefer the error style; a Found result has a nil Err.
//
// Steps:
//
//   - Searches report intermediate state as Step values through
//     Options.OnStep. Trace wraps that hook as a lazy iter.Seq so a
//     visualiser can range over a search and stop it at any point.
//
// Options:
//
//   - WithContext(ctx)    checked once per expansion; cancellation aborts.
//   - WithOnStep(fn)      receives every Step; a non-nil error aborts.
//   - WithMaxSteps(n)     aborts after n expansions (0 = no limit).
//
// Options observe a search, they never alter which path it finds.
//
// Errors:
//
//   - ErrNilGrid, ErrInvalidEndpoint, ErrNotFound, ErrStepLimit,
//     ErrOptionViolation, ErrInvalidPath.
package search
