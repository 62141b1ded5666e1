package footballdata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/k64z/rq"

	"github.com/k64z/footballdata/filter"
)

const (
	HeaderAuthToken   = "X-Auth-Token"
	HeaderUnfoldGoals = "X-Unfold-Goals"
)

// Get fetches path, relative to the base URL, and returns the decoded JSON
// body. The status code is not checked.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	reqURL := c.baseURL + path

	c.logger.Debug().Str("url", reqURL).Msg("sending request")

	resp := rq.New().
		Client(c.httpClient).
		URL(reqURL).
		Header(HeaderAuthToken, c.token).
		Header(HeaderUnfoldGoals, "true").
		DoContext(ctx)

	if err := resp.Error(); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Str("url", reqURL).Msg("received response")

	body, err := resp.Bytes()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	result, err := decodeJSON(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return result, nil
}

// decodeJSON decodes exactly one JSON value. Numbers are kept as json.Number
// so integers and floats print back as received.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}

	return v, nil
}

// getFiltered appends the encoded filters to path. The '?' is left out when
// there is nothing to encode.
func (c *Client) getFiltered(ctx context.Context, path string, filters filter.Set) (any, error) {
	if q := filters.Encode(); q != "" {
		path += "?" + q
	}
	return c.Get(ctx, path)
}
