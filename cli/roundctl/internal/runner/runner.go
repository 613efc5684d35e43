package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/execx"
)

// Tool launches the viewer with the assembled argument list, inheriting
// stdio. When dry is true it only prints the command to stderr. The call
// runs without a timeout because the viewer may be interactive; a nonzero
// viewer exit becomes this process's exit code.
func Tool(dry bool, name string, args ...string) {
	if dry {
		fmt.Fprintln(os.Stderr, "+ "+name+" "+strings.Join(args, " "))
		return
	}
	res := execx.Run(name, args...)
	if res.Code != 0 {
		os.Exit(res.Code)
	}
}
