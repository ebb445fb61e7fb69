package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository for testing
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	// Initialize git repo
	cmd := exec.Command("git", "init")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run())

	// Configure git user for commits
	cmd = exec.Command("git", "config", "user.email", "test@example.com")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run())

	cmd = exec.Command("git", "config", "user.name", "Test User")
	cmd.Dir = tmpDir
	require.NoError(t, cmd.Run())

	return tmpDir
}

// createAndStageFile creates a file and stages it
func createAndStageFile(t *testing.T, repoDir, filename, content string) {
	t.Helper()

	filePath := filepath.Join(repoDir, filename)
	err := os.WriteFile(filePath, []byte(content), 0644)
	require.NoError(t, err)

	cmd := exec.Command("git", "add", filename)
	cmd.Dir = repoDir
	require.NoError(t, cmd.Run())
}

// commitAll commits staged changes
func commitAll(t *testing.T, repoDir, message string) {
	t.Helper()

	cmd := exec.Command("git", "commit", "-m", message)
	cmd.Dir = repoDir
	require.NoError(t, cmd.Run())
}

func TestNewExecutor(t *testing.T) {
	executor := NewExecutor("/tmp/test")
	assert.NotNil(t, executor)
}

func TestExecutor_DiffCached(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	t.Run("empty staging area", func(t *testing.T) {
		diff, err := executor.DiffCached(ctx)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("with staged changes", func(t *testing.T) {
		createAndStageFile(t, repoDir, "test.txt", "hello world")

		diff, err := executor.DiffCached(ctx)
		require.NoError(t, err)
		assert.Contains(t, diff, "test.txt")
		assert.Contains(t, diff, "hello world")
	})
}

func TestExecutor_Diff(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	createAndStageFile(t, repoDir, "tracked.txt", "original\n")
	commitAll(t, repoDir, "initial commit")

	t.Run("clean working tree", func(t *testing.T) {
		diff, err := executor.Diff(ctx)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("with unstaged modification", func(t *testing.T) {
		err := os.WriteFile(filepath.Join(repoDir, "tracked.txt"), []byte("modified\n"), 0644)
		require.NoError(t, err)

		diff, err := executor.Diff(ctx)
		require.NoError(t, err)
		assert.Contains(t, diff, "tracked.txt")
		assert.Contains(t, diff, "+modified")
		assert.Contains(t, diff, "-original")

		// The modification is unstaged, so the staged scope stays empty
		staged, err := executor.DiffCached(ctx)
		require.NoError(t, err)
		assert.Empty(t, staged)
	})
}

func TestExecutor_Status(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	t.Run("clean repo", func(t *testing.T) {
		status, err := executor.Status(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, status)
	})

	t.Run("with staged file", func(t *testing.T) {
		createAndStageFile(t, repoDir, "new.txt", "content")

		status, err := executor.Status(ctx)
		require.NoError(t, err)
		assert.Contains(t, status, "new.txt")
	})
}

func TestExecutor_Commit(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	createAndStageFile(t, repoDir, "feature.go", "package feature\n")

	err := executor.Commit(ctx, "feat: add feature package")
	require.NoError(t, err)

	// Staging area is empty after the commit
	diff, err := executor.DiffCached(ctx)
	require.NoError(t, err)
	assert.Empty(t, diff)

	// The message is recorded
	cmd := exec.Command("git", "log", "-1", "--format=%s")
	cmd.Dir = repoDir
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "feat: add feature package")
}

func TestExecutor_Commit_NothingStaged(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	err := executor.Commit(ctx, "empty commit")
	assert.Error(t, err)
}

func TestExecutor_CurrentBranch(t *testing.T) {
	repoDir := setupTestRepo(t)
	executor := NewExecutor(repoDir)
	ctx := context.Background()

	createAndStageFile(t, repoDir, "a.txt", "a")
	commitAll(t, repoDir, "initial commit")

	branch, err := executor.CurrentBranch(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, branch)
}

func TestExecutor_IsWorkTree(t *testing.T) {
	ctx := context.Background()

	t.Run("inside a repository", func(t *testing.T) {
		repoDir := setupTestRepo(t)
		executor := NewExecutor(repoDir)
		assert.True(t, executor.IsWorkTree(ctx))
	})

	t.Run("outside a repository", func(t *testing.T) {
		executor := NewExecutor(t.TempDir())
		assert.False(t, executor.IsWorkTree(ctx))
	})
}

func TestErrNoChanges(t *testing.T) {
	assert.EqualError(t, ErrNoChanges, "no changes in requested scope")
}
