package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups this app's secrets in the OS keychain.
	KeyringService = "jobcorpus"

	githubAccount = "jobcorpus:github"
)

// GetGitHubToken returns the stored token, falling back to the GITHUB_TOKEN
// env var. The empty string is fine: the search API also works anonymously,
// just with tighter rate limits.
func GetGitHubToken() string {
	if tok, err := keyring.Get(KeyringService, githubAccount); err == nil && strings.TrimSpace(tok) != "" {
		return strings.TrimSpace(tok)
	}
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

func SetGitHubToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, githubAccount, token)
}

func DeleteGitHubToken() error {
	return keyring.Delete(KeyringService, githubAccount)
}
