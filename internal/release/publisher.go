package release

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Publisher creates a hosted release from a tag and rendered notes.
// It is the opaque publish capability; the engine only ever calls
// Publish(tag, notes).
type Publisher interface {
	Publish(ctx context.Context, tag, notes string) error
}

// DefaultHTTPTimeout bounds a publish request so a slow API cannot hang the
// run indefinitely.
const DefaultHTTPTimeout = 30 * time.Second

// GitHubPublisher publishes releases through the GitHub REST API.
type GitHubPublisher struct {
	// Repository is the "owner/name" slug.
	Repository string
	// Token authenticates the request. Empty means unauthenticated (the API
	// will reject release creation, surfaced as a publish error).
	Token string
	// APIBase overrides the API endpoint (used by tests).
	APIBase string

	client *http.Client
}

// NewGitHubPublisher creates a publisher for the given repository slug,
// reading the token from the GITHUB_TOKEN environment variable.
func NewGitHubPublisher(repository string) *GitHubPublisher {
	return &GitHubPublisher{
		Repository: repository,
		Token:      os.Getenv("GITHUB_TOKEN"),
		APIBase:    "https://api.github.com",
		client:     &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// releaseRequest is the GitHub create-release payload.
type releaseRequest struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	Body    string `json:"body"`
}

// Publish creates a release for an already-pushed tag.
func (p *GitHubPublisher) Publish(ctx context.Context, tag, notes string) error {
	payload, err := json.Marshal(releaseRequest{TagName: tag, Name: tag, Body: notes})
	if err != nil {
		return fmt.Errorf("encoding release payload: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/releases", p.APIBase, p.Repository)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}

	client := p.client
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("creating release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("creating release: %s: %s", resp.Status, string(body))
	}

	return nil
}
