// Package footballdata is a thin client for the football-data.org v4 API.
//
// Responses are returned as decoded, untyped JSON. The client does not look
// at status codes: an error payload from the API is returned the same way as
// a successful one.
package footballdata

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/k64z/footballdata/config"
)

type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	baseURL    string
	token      string
}

type options struct {
	httpClient *http.Client
	logger     *zerolog.Logger
}

type Option func(o *options) error

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		if httpClient == nil {
			return errors.New("httpClient should be non-nil")
		}
		o.httpClient = httpClient
		return nil
	}
}

// WithLogger sets the logger used for request tracing. Requests are logged at
// debug level; the API token is never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = &logger
		return nil
	}
}

// New returns a client for the API rooted at cfg.URI, authenticating with
// cfg.APIToken.
func New(cfg config.Config, opts ...Option) (*Client, error) {
	if cfg.URI == "" {
		return nil, config.ErrMissingURI
	}

	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	c := &Client{
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
		baseURL:    strings.TrimRight(cfg.URI, "/"),
		token:      cfg.APIToken,
	}

	if o.httpClient != nil {
		c.httpClient = o.httpClient
	}
	if o.logger != nil {
		c.logger = *o.logger
	}

	return c, nil
}

// BaseURL returns the API root every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
