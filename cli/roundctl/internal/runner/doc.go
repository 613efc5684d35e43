// Package runner executes the external viewer on behalf of the dispatcher.
//
// It keeps the dry-run logging and exit-passthrough semantics in one place:
// dispatch decides what to run, runner decides how running and failing look.
package runner
