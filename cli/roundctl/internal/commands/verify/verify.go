package verify

import (
	"fmt"
	"os"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/cmdregistry"
	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/rounds"
)

// Register adds the verify command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("verify", handle)
}

func handle(ctx *cmdregistry.Context) error {
	all := rounds.All()
	warnings, errs := rounds.Validate(all)
	for _, w := range warnings {
		fmt.Printf("[verify] warning: %s\n", w)
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "[verify] error: %s\n", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("round table validation failed (%d errors)", len(errs))
	}
	fmt.Printf("[verify] round table: OK (%d rounds)\n", len(all))
	return nil
}
