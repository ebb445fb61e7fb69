package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoChanges is returned when the requested scope (staged or unstaged)
// contains no changes. It is a normal outcome, not a failure of the
// analysis itself; callers decide how to surface it.
var ErrNoChanges = errors.New("no changes in requested scope")

// Executor defines the interface for git command execution
type Executor interface {
	// Diff returns the diff of unstaged changes
	Diff(ctx context.Context) (string, error)

	// DiffCached returns the diff of staged changes
	DiffCached(ctx context.Context) (string, error)

	// Status returns the current git status
	Status(ctx context.Context) (string, error)

	// Commit executes a git commit with the given message
	Commit(ctx context.Context, message string) error

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// IsWorkTree reports whether the working directory is inside a git work tree
	IsWorkTree(ctx context.Context) bool
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Diff returns the diff of unstaged changes
func (e *DefaultExecutor) Diff(ctx context.Context) (string, error) {
	return e.runGit(ctx, "diff")
}

// DiffCached returns the diff of staged changes
func (e *DefaultExecutor) DiffCached(ctx context.Context) (string, error) {
	return e.runGit(ctx, "diff", "--cached")
}

// Status returns the current git status
func (e *DefaultExecutor) Status(ctx context.Context) (string, error) {
	return e.runGit(ctx, "status")
}

// Commit executes a git commit with the given message
func (e *DefaultExecutor) Commit(ctx context.Context, message string) error {
	_, err := e.runGit(ctx, "commit", "-m", message)
	return err
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	return e.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// IsWorkTree reports whether the working directory is inside a git work tree
func (e *DefaultExecutor) IsWorkTree(ctx context.Context) bool {
	out, err := e.runGit(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}
