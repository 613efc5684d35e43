package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/cmdregistry"
)

// Register adds the preflight command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("preflight", handle)
}

func handle(ctx *cmdregistry.Context) error {
	ok := true
	if path, err := exec.LookPath(ctx.Tool); err != nil {
		fmt.Fprintf(os.Stderr, "[preflight] viewer %s not found on PATH\n", ctx.Tool)
		ok = false
	} else {
		fmt.Printf("[preflight] viewer %s: OK (%s)\n", ctx.Tool, path)
	}
	if strings.TrimSpace(ctx.ConfigPath) == "" {
		fmt.Println("[preflight] config: none (built-in defaults)")
	} else if _, err := os.Stat(ctx.ConfigPath); err == nil {
		fmt.Printf("[preflight] config: OK (%s)\n", ctx.ConfigPath)
	} else {
		fmt.Printf("[preflight] config: not present (%s), using defaults\n", ctx.ConfigPath)
	}
	if !ok {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}
