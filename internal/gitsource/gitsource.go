// Package gitsource keeps local clones of git repositories that hold card
// files.
package gitsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/rs/zerolog/log"
)

// Syncer clones and pulls repositories, retrying transient failures.
type Syncer struct {
	Attempts uint
	Delay    time.Duration
	// Progress receives git's progress output when set.
	Progress io.Writer
}

func NewSyncer() *Syncer {
	return &Syncer{Attempts: 3, Delay: time.Second}
}

// Sync clones url into localPath if nothing is there yet, and pulls the
// latest changes otherwise.
func (s *Syncer) Sync(ctx context.Context, url, localPath string) error {
	log := log.Ctx(ctx).With().Str("repo", url).Str("path", localPath).Logger()
	return retry.Do(
		func() error {
			err := s.syncOnce(ctx, url, localPath)
			if err != nil && permanent(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.Attempts),
		retry.Delay(s.Delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Err(err).Uint("attempt", n+1).Msg("git-sync-retry")
		}),
	)
}

func (s *Syncer) syncOnce(ctx context.Context, url, localPath string) error {
	log := log.Ctx(ctx)
	_, err := os.Stat(localPath)
	switch {
	case os.IsNotExist(err):
		log.Info().Str("repo", url).Str("path", localPath).Msg("git-clone")
		_, err := git.PlainCloneContext(ctx, localPath, false, &git.CloneOptions{
			URL:      url,
			Progress: s.Progress,
		})
		if err != nil {
			// A failed clone leaves a partial checkout that would be
			// mistaken for a clone on the next attempt.
			_ = os.RemoveAll(localPath)
			return fmt.Errorf("failed to clone repo %s: %w", url, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("error checking path %s: %w", localPath, err)
	}

	log.Info().Str("path", localPath).Msg("git-pull")
	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return fmt.Errorf("failed to open existing repo at %s: %w", localPath, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree for repo at %s: %w", localPath, err)
	}
	err = worktree.PullContext(ctx, &git.PullOptions{
		RemoteName: "origin",
		Progress:   s.Progress,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull changes for repo at %s: %w", localPath, err)
	}
	return nil
}

func permanent(err error) bool {
	return errors.Is(err, transport.ErrAuthenticationRequired) ||
		errors.Is(err, transport.ErrAuthorizationFailed) ||
		errors.Is(err, transport.ErrRepositoryNotFound) ||
		errors.Is(err, transport.ErrEmptyRemoteRepository) ||
		errors.Is(err, git.ErrNonFastForwardUpdate) ||
		errors.Is(err, git.ErrRepositoryNotExists) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// LocalPath maps a repository URL to its clone directory under baseDir.
// Both https URLs and scp-like "git@host:owner/repo.git" forms are
// accepted.
func LocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err != nil || (parsedURL.Scheme != "https" && parsedURL.Scheme != "http") {
		if strings.Contains(repoURL, "@") {
			parts := strings.Split(repoURL, ":")
			if len(parts) == 2 {
				hostAndUser := strings.Split(parts[0], "@")
				if len(hostAndUser) == 2 {
					host := hostAndUser[1]
					repoPath := strings.TrimSuffix(parts[1], ".git")
					return filepath.Join(baseDir, host, repoPath), nil
				}
			}
		}
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	sanitizedPath := strings.TrimSuffix(parsedURL.Path, ".git")
	if sanitizedPath == "" || sanitizedPath == "/" {
		return "", fmt.Errorf("git URL has no repository path: %s", repoURL)
	}
	return filepath.Join(baseDir, parsedURL.Host, sanitizedPath), nil
}

// IsGitURL reports whether path names a remote repository rather than a
// local directory.
func IsGitURL(path string) bool {
	if strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return true
	}
	return strings.HasPrefix(path, "git@") || strings.HasSuffix(path, ".git")
}
