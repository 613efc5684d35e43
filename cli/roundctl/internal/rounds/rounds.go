// Package rounds holds the curated registry of design review rounds: for each
// round of the screening campaign, the ordered list of design sequence names
// to hand to the viewer. The names themselves are opaque tokens; only the
// viewer knows what `us/0/0` or `nxx/2/2/0/2` means.
package rounds

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRound marks lookups for keys the table does not define.
	ErrUnknownRound = errors.New("not yet defined")
	// ErrRoundDisabled marks rounds that are kept in the table but must not
	// be dispatched.
	ErrRoundDisabled = errors.New("is disabled")
)

// Round is one curated batch of design sequence names.
//
// Note and Cost are display-only; they never become part of the forwarded
// argument list. Disabled rounds stay listed but are refused by Resolve.
type Round struct {
	Key      string
	Note     string
	Cost     string
	Disabled bool
	Designs  []string
}

// Argv returns the argument list forwarded to the viewer: the round's designs
// in table order followed by extra, verbatim. The slice is freshly allocated
// on every call, so callers may append to it.
func (r Round) Argv(extra []string) []string {
	argv := make([]string, 0, len(r.Designs)+len(extra))
	argv = append(argv, r.Designs...)
	argv = append(argv, extra...)
	return argv
}

// Lookup finds the round for key. The scan follows table order, so the first
// entry wins if the table were ever malformed (Validate reports that case).
func Lookup(key string) (Round, bool) {
	for _, r := range table {
		if r.Key == key {
			return r, true
		}
	}
	return Round{}, false
}

// Resolve applies the dispatch policy on top of Lookup: unknown and disabled
// rounds come back as errors whose text is suitable for user display.
func Resolve(key string) (Round, error) {
	r, ok := Lookup(key)
	if !ok {
		return Round{}, fmt.Errorf("round '%s' %w", key, ErrUnknownRound)
	}
	if r.Disabled {
		return Round{}, fmt.Errorf("round '%s' %w", key, ErrRoundDisabled)
	}
	return r, nil
}

// All returns a copy of the table in curated order.
func All() []Round {
	out := make([]Round, len(table))
	copy(out, table)
	return out
}
