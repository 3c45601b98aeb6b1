package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitSource loads document versions out of a git repository, so two
// revisions of the same file can be compared without checking them out.
type GitSource struct {
	repo *git.Repository
}

// NewGitSource opens the repository containing the working directory.
func NewGitSource() (*GitSource, error) {
	repoPath, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", repoPath, err)
	}

	return &GitSource{repo: repo}, nil
}

// FileAtRevision returns the content of path at the given revision
// (branch, tag, or commit hash).
func (gs *GitSource) FileAtRevision(revision, path string) (string, error) {
	hash, err := gs.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", fmt.Errorf("failed to resolve revision %s: %w", revision, err)
	}

	commit, err := gs.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("failed to get commit %s: %w", hash, err)
	}

	return readFileFromCommit(commit, path)
}

func readFileFromCommit(commit *object.Commit, path string) (string, error) {
	file, err := commit.File(path)
	if err != nil {
		return "", fmt.Errorf("failed to get file %s from commit: %w", path, err)
	}

	reader, err := file.Reader()
	if err != nil {
		return "", fmt.Errorf("failed to open file %s from commit: %w", path, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s from commit: %w", path, err)
	}
	return string(content), nil
}
