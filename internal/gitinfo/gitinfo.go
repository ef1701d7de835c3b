// Package gitinfo extracts the strings the engine validates from git's
// plumbing files: the current branch name from .git/HEAD and commit message
// headlines from a message file. It deliberately reads the two text files
// directly instead of shelling out to git, so hooks stay dependency-free.
package gitinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const headRefPrefix = "ref: refs/heads/"

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("detached HEAD, no branch name")

// FindRepo locates the .git directory from startDir upwards.
func FindRepo(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ".git")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.New("not inside a git repository")
}

// CurrentBranch reads the branch name from .git/HEAD.
func CurrentBranch(startDir string) (string, error) {
	gitDir, err := FindRepo(startDir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	head := strings.TrimSpace(string(data))
	if !strings.HasPrefix(head, headRefPrefix) {
		return "", ErrDetachedHead
	}
	return strings.TrimPrefix(head, headRefPrefix), nil
}

// CommitMessage reads a commit message file (the commit-msg hook argument or
// .git/COMMIT_EDITMSG) and returns the headline: comment lines are stripped,
// the first remaining non-blank line wins.
func CommitMessage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read commit message: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return strings.TrimRight(line, "\r"), nil
	}
	return "", errors.New("commit message is empty")
}

// StagedCommitMessage reads .git/COMMIT_EDITMSG of the enclosing repository.
func StagedCommitMessage(startDir string) (string, error) {
	gitDir, err := FindRepo(startDir)
	if err != nil {
		return "", err
	}
	return CommitMessage(filepath.Join(gitDir, "COMMIT_EDITMSG"))
}
