package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heathcliff26/brewbook/pkg/config"
)

// Number of stories requested per page, the maximum allowed by the api
const storiesPerPage = 100

// StoryblokClient talks to the storyblok management api of a single space
type StoryblokClient struct {
	// Base url of the space.
	// Example: https://mapi.storyblok.com/v1/spaces/<space-id>
	spaceURL string
	// The personal access token used for all calls.
	token string

	httpClient *http.Client
}

// Create and initialize a new StoryblokClient
func NewStoryblokClient(cfg config.StoryblokConfig) *StoryblokClient {
	return &StoryblokClient{
		spaceURL:   cfg.API + "/spaces/" + url.PathEscape(cfg.SpaceID),
		token:      cfg.Token,
		httpClient: http.DefaultClient,
	}
}

// Send a request to the api and decode the response into out, if out is not nil.
// Any status code >= 400 results in an APIError.
func (c *StoryblokClient) do(method, path string, query url.Values, payload any, out any) (http.Header, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload for %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	u := c.spaceURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s %s: %w", method, path, err)
	}
	commonHeaders(req, c.token)

	slog.Debug("Calling storyblok api", slog.String("method", method), slog.String("path", path))
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Body:       string(b),
		}
	}

	if out != nil {
		err = json.NewDecoder(res.Body).Decode(out)
		if err != nil {
			return nil, fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
		}
	}

	return res.Header, nil
}
