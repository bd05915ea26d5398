package client

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for every response of the management api with a status code >= 400
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed [%d] %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Check if the error is an APIError with status 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func commonHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	// Personal access tokens are sent without a scheme
	if token != "" {
		req.Header.Set("Authorization", token)
	}
}
