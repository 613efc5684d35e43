// Package preflight implements the "preflight" host diagnostics command.
// It checks that the configured viewer resolves on PATH and reports which
// config file, if any, is in effect.
package preflight
