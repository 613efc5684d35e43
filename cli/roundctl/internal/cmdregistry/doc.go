// Package cmdregistry defines a lightweight command registry used by the CLI
// entrypoint. It maps command names to handler functions that accept a shared
// Context payload, so the named commands can live in separate packages while
// main.go stays focused on argument parsing and round dispatch.
package cmdregistry
