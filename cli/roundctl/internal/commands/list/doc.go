// Package list implements the "list" command: one line per curated round
// with its design count, note, cost annotation, and disabled marker.
package list
