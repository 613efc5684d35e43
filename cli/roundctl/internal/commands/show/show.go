package show

import (
	"errors"
	"fmt"
	"os"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/cmdregistry"
	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/rounds"
)

// Register adds the show command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("show", handle)
}

func handle(ctx *cmdregistry.Context) error {
	if len(ctx.Args) != 1 {
		return fmt.Errorf("usage: roundctl show <round-key>")
	}
	key := ctx.Args[0]
	rd, err := rounds.Resolve(key)
	if errors.Is(err, rounds.ErrRoundDisabled) {
		// displaying a disabled round is harmless, dispatching it is not
		fmt.Fprintf(os.Stderr, "note: round '%s' is disabled\n", key)
		rd, _ = rounds.Lookup(key)
		err = nil
	}
	if err != nil {
		return err
	}
	for _, d := range rd.Designs {
		fmt.Println(d)
	}
	return nil
}
