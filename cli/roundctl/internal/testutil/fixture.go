// Package testutil holds the integration-test harness for roundctl: building
// the binary, faking the viewer with an argv-recording stub, and capturing
// process output.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// CmdResult captures stdout, stderr, and the resulting error from a command execution.
type CmdResult struct {
	Stdout string
	Stderr string
	Err    error
}

// Success reports whether the underlying command exited without error.
func (r CmdResult) Success() bool { return r.Err == nil }

// ExitCode maps Err to a process exit status: 0 on success, the child's own
// code when it ran and failed, -1 otherwise.
func (r CmdResult) ExitCode() int {
	if r.Err == nil {
		return 0
	}
	if ee, ok := r.Err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	return -1
}

// BuildBinary compiles roundctl into a per-test temp dir and returns the
// binary path. The test is skipped when the toolchain is unavailable or the
// build fails (e.g. module cache not populated).
func BuildBinary(t *testing.T) string {
	t.Helper()
	requireBinary(t, "go")
	root, err := findModuleRoot()
	if err != nil {
		t.Fatalf("detect module root: %v", err)
	}
	bin := filepath.Join(t.TempDir(), "roundctl")
	build := exec.Command("go", "build", "-trimpath", "-o", bin, "./cli/roundctl")
	build.Dir = root
	build.Env = append(os.Environ(), "GO111MODULE=on")
	if out, err := build.CombinedOutput(); err != nil {
		t.Skipf("go build failed: %v\n%s", err, out)
	}
	return bin
}

// WriteStubTool writes an executable viewer stub named name into dir. Each
// invocation appends its argv to argvFile on one line, then exits with code.
func WriteStubTool(t *testing.T, dir, name, argvFile string, code int) string {
	t.Helper()
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\nexit %d\n", argvFile, code)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

// RunBinary executes bin with env overrides applied over the current
// environment. An override with an empty value removes the variable.
func RunBinary(bin string, overrides map[string]string, args ...string) CmdResult {
	cmd := exec.Command(bin, args...)
	cmd.Env = environWith(overrides)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// PathWith returns the current PATH with dir prepended, for pointing the
// dispatcher at a stub viewer.
func PathWith(dir string) string {
	if cur := os.Getenv("PATH"); cur != "" {
		return dir + string(os.PathListSeparator) + cur
	}
	return dir
}

func environWith(overrides map[string]string) []string {
	env := mapFromEnviron(os.Environ())
	for k, v := range overrides {
		if v == "" {
			delete(env, k)
			continue
		}
		env[k] = v
	}
	return mapToEnviron(env)
}

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if st, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !st.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("module root not found")
}

func mapFromEnviron(env []string) map[string]string {
	m := make(map[string]string, len(env))
	for _, kv := range env {
		if kv == "" {
			continue
		}
		if idx := strings.IndexRune(kv, '='); idx >= 0 {
			m[kv[:idx]] = kv[idx+1:]
		}
	}
	return m
}

func mapToEnviron(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	return out
}
