package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result carries the exit code and raw error of a finished command.
type Result struct {
	Code int
	Err  error
}

func Run(name string, args ...string) Result {
	return RunCtx(context.Background(), name, args...)
}

// RunCtx executes a command with inherited stdio and maps its outcome to an
// exit code: the child's own code when it ran, 124 when ctx expired before
// it could, and 1 for anything else.
func RunCtx(ctx context.Context, name string, args ...string) Result {
	if os.Getenv("ROUNDCTL_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else if ctx.Err() == context.DeadlineExceeded {
			code = 124
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}
