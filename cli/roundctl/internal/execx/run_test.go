package execx

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skipf("sh not available: %v", err)
	}
}

func TestRunExitCodes(t *testing.T) {
	requireSh(t)
	if res := Run("sh", "-c", "exit 0"); res.Code != 0 || res.Err != nil {
		t.Fatalf("code=%d err=%v", res.Code, res.Err)
	}
	res := Run("sh", "-c", "exit 7")
	if res.Code != 7 {
		t.Fatalf("code=%d want 7", res.Code)
	}
	if res.Err == nil {
		t.Fatalf("nonzero exit should carry an error")
	}
}

func TestRunMissingBinary(t *testing.T) {
	res := Run("roundctl-test-no-such-binary")
	if res.Code != 1 {
		t.Fatalf("code=%d want 1", res.Code)
	}
}

func TestRunCtxExpired(t *testing.T) {
	requireSh(t)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	res := RunCtx(ctx, "sh", "-c", "exit 0")
	if res.Code != 124 {
		t.Fatalf("code=%d want 124", res.Code)
	}
}
