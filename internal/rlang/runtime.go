package rlang

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"coschooldata/internal/domain"
)

// probeMissingStatus is the exit status the probe harness uses when the data
// package is not installed.
const probeMissingStatus = 3

// ErrPackageMissing reports that the R data package could not be loaded by
// the configured interpreter.
var ErrPackageMissing = errors.New("r data package is not installed")

// CallError reports a failed foreign call. The foreign error text is not
// translated; stderr is carried through for diagnostics.
type CallError struct {
	Fn       string
	ExitCode int
	Stderr   string
}

func (e *CallError) Error() string {
	msg := fmt.Sprintf("r call %s: exit status %d", e.Fn, e.ExitCode)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + lastLines(s, 5)
	}
	return msg
}

// lastLines returns at most n trailing lines of s; R prints its useful error
// last, after any startup noise.
func lastLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// payload is the stdin envelope read by the call harness.
type payload struct {
	Args  []any          `json:"args"`
	Named map[string]any `json:"named"`
}

// Runtime drives the coschooldata R package through an Rscript subprocess,
// one process per call. The installation is probed once per process and the
// result retained for its lifetime.
type Runtime struct {
	rscript string
	pkg     string

	mu         sync.Mutex
	probed     bool
	probeErr   error
	pkgVersion string
}

// New returns a Runtime invoking pkg functions via the rscript binary.
// Empty arguments fall back to "Rscript" on PATH and "coschooldata".
func New(rscript, pkg string) *Runtime {
	if rscript == "" {
		rscript = "Rscript"
	}
	if pkg == "" {
		pkg = "coschooldata"
	}
	return &Runtime{rscript: rscript, pkg: pkg}
}

// PackageVersion returns the version of the R data package, probing the
// installation if no call has run yet.
func (r *Runtime) PackageVersion(ctx context.Context) (string, error) {
	if err := r.ensure(ctx); err != nil {
		return "", err
	}
	return r.pkgVersion, nil
}

// ensure probes the R installation on the first call and retains the
// outcome. A cancelled or timed-out probe says nothing about the
// installation, so those errors are returned without being retained and
// the next call probes again.
func (r *Runtime) ensure(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.probed {
		return r.probeErr
	}
	expr, err := probeExpr(r.pkg)
	if err != nil {
		r.probed = true
		r.probeErr = err
		return r.probeErr
	}
	out, callErr := r.run(ctx, "(probe)", expr, nil)
	if callErr != nil {
		if errors.Is(callErr, context.Canceled) || errors.Is(callErr, context.DeadlineExceeded) {
			return fmt.Errorf("probe r installation: %w", callErr)
		}
		var ce *CallError
		if errors.As(callErr, &ce) && ce.ExitCode == probeMissingStatus {
			r.probeErr = fmt.Errorf("%w: package %q, interpreter %q", ErrPackageMissing, r.pkg, r.rscript)
		} else {
			r.probeErr = fmt.Errorf("probe r installation: %w", callErr)
		}
		r.probed = true
		return r.probeErr
	}
	r.probed = true
	r.pkgVersion = strings.TrimSpace(string(out))
	return nil
}

// CallRaw applies fn and returns the undecoded JSON payload printed by the
// harness.
func (r *Runtime) CallRaw(ctx context.Context, fn string, args []any, named map[string]any) (json.RawMessage, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	expr, err := callExpr(r.pkg, fn)
	if err != nil {
		return nil, err
	}
	stdin, err := json.Marshal(payload{Args: args, Named: named})
	if err != nil {
		return nil, fmt.Errorf("encode args for %s: %w", fn, err)
	}
	out, err := r.run(ctx, fn, expr, stdin)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return nil, fmt.Errorf("r call %s: empty result payload", fn)
	}
	return json.RawMessage(out), nil
}

// CallFrame applies fn and decodes the returned table.
func (r *Runtime) CallFrame(ctx context.Context, fn string, args []any, named map[string]any) (*domain.Frame, error) {
	raw, err := r.CallRaw(ctx, fn, args, named)
	if err != nil {
		return nil, err
	}
	var frame domain.Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("decode frame from %s: %w", fn, err)
	}
	return &frame, nil
}

// run executes one Rscript invocation. The subprocess gets its own process
// group so cancellation kills R together with anything it forked.
func (r *Runtime) run(ctx context.Context, fn, expr string, stdin []byte) ([]byte, error) {
	cmd := exec.Command(r.rscript, "--vanilla", "-e", expr)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", r.rscript, err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		<-done
		return nil, fmt.Errorf("r call %s: %w", fn, ctx.Err())
	case err := <-done:
		if err != nil {
			exitCode := -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				exitCode = exitErr.ExitCode()
			}
			return nil, &CallError{Fn: fn, ExitCode: exitCode, Stderr: stderr.String()}
		}
	}
	return stdout.Bytes(), nil
}

var _ domain.Runtime = (*Runtime)(nil)
