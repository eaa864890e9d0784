package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultClientTimeout = 30 * time.Second
	defaultRetryCount    = 2
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080")
//	resp, err := client.R().SetBody(req).Post("/api/user/sync")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client for baseURL. Connection errors and 5xx
// responses other than 500 are retried twice.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultClientTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetRetryCount(defaultRetryCount).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() > 500
		})

	return &HTTPClient{Client: client}
}
