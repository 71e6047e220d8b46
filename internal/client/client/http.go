package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// errEmptyBody is a 2xx reply without the entity the caller asked for.
var errEmptyBody = fmt.Errorf("%w: empty body", ErrMalformedResponse)

// maxErrorBody bounds how much of a failed response is read for `detail`.
const maxErrorBody = 64 << 10

// HTTPClient talks JSON to the record-keeping service.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the service rooted at baseURL.
// A zero timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("empty server url")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{baseURL: baseURL, http: &http.Client{Timeout: timeout}}, nil
}

// Login calls POST /login and returns the display identity.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.Identity, error) {
	var id models.Identity
	err := c.do(ctx, http.MethodPost, "/login", req, &id)
	if err != nil && !errors.Is(err, errEmptyBody) {
		return models.Identity{}, err
	}
	// the service may reply with an empty body; fall back to what was sent
	if id.Username == "" {
		id = models.Identity{Username: req.Username, ProfilePicture: req.ProfilePicture}
	}
	return id, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, ctxErr)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Detail: parseDetail(b)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// parseDetail extracts a string `detail` field. Structured details (such as
// lists of field errors) are not surfaced.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err != nil {
		return ""
	}
	return s
}

// Collection is the HTTP Gateway for one entity kind.
type Collection[E any, R any] struct {
	c    *HTTPClient
	kind string
}

// NewCollection binds kind (e.g. "artists") to the client.
func NewCollection[E any, R any](c *HTTPClient, kind string) *Collection[E, R] {
	return &Collection[E, R]{c: c, kind: kind}
}

func (g *Collection[E, R]) collectionPath() string {
	return "/" + g.kind + "/"
}

func (g *Collection[E, R]) itemPath(id int64) string {
	return "/" + g.kind + "/" + strconv.FormatInt(id, 10)
}

func (g *Collection[E, R]) List(ctx context.Context) ([]E, error) {
	var items []E
	if err := g.c.do(ctx, http.MethodGet, g.collectionPath(), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

func (g *Collection[E, R]) Create(ctx context.Context, req R) (E, error) {
	var e E
	err := g.c.do(ctx, http.MethodPost, g.collectionPath(), req, &e)
	return e, err
}

func (g *Collection[E, R]) Update(ctx context.Context, id int64, req R) (E, error) {
	var e E
	err := g.c.do(ctx, http.MethodPut, g.itemPath(id), req, &e)
	return e, err
}

func (g *Collection[E, R]) Delete(ctx context.Context, id int64) error {
	return g.c.do(ctx, http.MethodDelete, g.itemPath(id), nil, nil)
}
