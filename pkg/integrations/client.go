package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	gterrors "github.com/matzehuels/gemtree/pkg/errors"
	"github.com/matzehuels/gemtree/pkg/observability"
)

// Client provides shared HTTP functionality for registry API clients.
// It issues a single GET per call: there is no retry and no response caching
// at this layer.
type Client struct {
	http    *resty.Client
	headers map[string]string
}

// NewClient creates a Client with the given request timeout and default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
//
// Errors carry a [gterrors.Code]:
//   - NETWORK_ERROR wrapping [ErrNetwork] for transport failures and non-2xx statuses
//   - PACKAGE_NOT_FOUND wrapping [ErrNotFound] for 404 responses
//   - DECODE_ERROR when the body is not a single valid JSON document for v
//
// A cancelled ctx surfaces as NETWORK_ERROR that also matches context.Canceled.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	body, err := c.doRequest(ctx, rawURL)
	if err != nil {
		return err
	}
	defer body.Close()
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return gterrors.Wrap(gterrors.ErrCodeDecode, err, "decode %s", rawURL)
	}
	if _, err := dec.Token(); err != io.EOF {
		return gterrors.New(gterrors.ErrCodeDecode, "decode %s: trailing data after JSON document", rawURL)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	host, path := splitURL(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, gterrors.Wrap(gterrors.ErrCodeNetwork, fmt.Errorf("%w: %w", ErrNetwork, err), "GET %s", rawURL)
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode(), time.Since(start))

	if err := checkStatus(resp.StatusCode()); err != nil {
		resp.RawBody().Close()
		return nil, gterrors.Wrap(codeFor(err), err, "GET %s", rawURL)
	}
	return resp.RawBody(), nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func codeFor(err error) gterrors.Code {
	if err == ErrNotFound {
		return gterrors.ErrCodePackageNotFound
	}
	return gterrors.ErrCodeNetwork
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}
