package list

import (
	"fmt"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/cmdregistry"
	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/rounds"
)

// Register adds the list command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("list", handle)
}

func handle(ctx *cmdregistry.Context) error {
	for _, rd := range rounds.All() {
		fmt.Println(format(rd))
	}
	return nil
}

func format(rd rounds.Round) string {
	line := fmt.Sprintf("%-3s %2d designs  %s", rd.Key, len(rd.Designs), rd.Note)
	if rd.Cost != "" {
		line += " (" + rd.Cost + ")"
	}
	if rd.Disabled {
		line += " [disabled]"
	}
	return line
}
