// Package compiler invokes the external TeX toolchain that turns rendered
// markup into a PDF. The invocation runs under a hard wall-clock budget;
// exceeding it (or losing the caller) terminates the whole process group so
// no compiler process outlives its request.
package compiler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"
)

// ErrTimedOut reports that the compiler was terminated before finishing,
// either because the wall-clock budget elapsed or the caller went away.
var ErrTimedOut = errors.New("compiler: invocation timed out")

// ErrFailed reports that the compiler ran to completion but rejected the
// markup. The compiler's own output stays in the log.
var ErrFailed = errors.New("compiler: invocation failed")

const (
	// DefaultTimeout is the wall-clock budget per invocation.
	DefaultTimeout = 30 * time.Second
	// jobName fixes the TeX job name so input and output paths are known.
	jobName = "resume"
	// killDelay bounds how long Wait blocks after the process group is
	// signalled before the pipes are forcibly closed.
	killDelay = 2 * time.Second
)

// Compiler turns LaTeX markup into a PDF binary.
type Compiler interface {
	Compile(ctx context.Context, markup []byte, locale string) ([]byte, error)
}

// PDFLaTeX shells out to a pdflatex-compatible binary.
type PDFLaTeX struct {
	// Binary is the compiler executable. Defaults to "pdflatex".
	Binary string
	// Timeout is the wall-clock budget. Defaults to DefaultTimeout.
	Timeout time.Duration
	// Logger receives compiler diagnostics. Defaults to slog.Default.
	Logger *slog.Logger
}

var _ Compiler = (*PDFLaTeX)(nil)

// Compile writes markup to a scratch directory, runs the compiler under the
// configured budget, and returns the produced PDF. Failure modes are
// classified as ErrTimedOut or ErrFailed; either way the spawned process
// group is confirmed gone before Compile returns.
func (c *PDFLaTeX) Compile(ctx context.Context, markup []byte, locale string) ([]byte, error) {
	binary := c.Binary
	if binary == "" {
		binary = "pdflatex"
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scratch, err := os.MkdirTemp("", "resumegen-compile-*")
	if err != nil {
		return nil, fmt.Errorf("%w: scratch dir: %v", ErrFailed, err)
	}
	defer os.RemoveAll(scratch)

	texPath := filepath.Join(scratch, jobName+".tex")
	if err := os.WriteFile(texPath, markup, 0o600); err != nil {
		return nil, fmt.Errorf("%w: write markup: %v", ErrFailed, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binary,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-jobname", jobName,
		"-output-directory", scratch,
		texPath,
	)
	cmd.Dir = scratch
	cmd.Env = append(os.Environ(), "LANG="+locale)

	// The compiler forks helpers; signal the whole group so cancellation
	// leaves no orphan behind.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = killDelay

	started := time.Now()
	output, err := cmd.CombinedOutput()
	if err != nil {
		// Deadline and caller disconnection count identically: the budget
		// was exhausted from the request's point of view.
		if runCtx.Err() != nil {
			logger.Warn("compiler terminated",
				"binary", binary, "elapsed", time.Since(started), "cause", runCtx.Err())
			return nil, ErrTimedOut
		}
		logger.Error("compiler rejected markup",
			"binary", binary, "elapsed", time.Since(started), "output", tail(output, 2048))
		return nil, ErrFailed
	}

	pdf, err := os.ReadFile(filepath.Join(scratch, jobName+".pdf"))
	if err != nil {
		logger.Error("compiler exited cleanly but produced no pdf", "binary", binary)
		return nil, fmt.Errorf("%w: no output produced", ErrFailed)
	}
	return pdf, nil
}

func tail(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[len(b)-n:])
}
