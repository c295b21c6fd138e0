// Package gitrepo clones remote repositories for bundling.
package gitrepo

import (
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

const (
	cloneDirectoryPattern = "bundle-clone-"
	tokenEnvironmentName  = "GH_TOKEN"
	tokenUsername         = "git"
	errorCreateTempFormat = "creating clone directory: %w"
	errorCloneFormat      = "cloning %s: %w"
)

// Cloner clones a repository URL into a local directory.
type Cloner interface {
	Clone(repositoryURL string) (string, func(), error)
}

// Service implements Cloner using go-git shallow clones.
type Service struct{}

// NewService constructs a git clone service.
func NewService() *Service {
	return &Service{}
}

// Clone fetches repositoryURL into a fresh temporary directory and returns
// the directory path together with a cleanup function that removes it. The
// directory is removed before returning when the clone fails.
func (service *Service) Clone(repositoryURL string) (string, func(), error) {
	cloneDirectory, tempError := os.MkdirTemp("", cloneDirectoryPattern)
	if tempError != nil {
		return "", nil, fmt.Errorf(errorCreateTempFormat, tempError)
	}
	if _, cloneError := git.PlainClone(cloneDirectory, false, cloneOptionsForURL(repositoryURL)); cloneError != nil {
		os.RemoveAll(cloneDirectory)
		return "", nil, fmt.Errorf(errorCloneFormat, repositoryURL, cloneError)
	}
	cleanup := func() {
		os.RemoveAll(cloneDirectory)
	}
	return cloneDirectory, cleanup, nil
}

// cloneOptionsForURL builds shallow clone options, attaching basic token
// authentication when GH_TOKEN is set.
func cloneOptionsForURL(repositoryURL string) *git.CloneOptions {
	cloneOptions := &git.CloneOptions{
		URL:   repositoryURL,
		Depth: 1,
	}
	if token := os.Getenv(tokenEnvironmentName); token != "" {
		cloneOptions.Auth = &githttp.BasicAuth{
			Username: tokenUsername,
			Password: token,
		}
	}
	return cloneOptions
}

var _ Cloner = (*Service)(nil)
