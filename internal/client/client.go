// Package client is the REST client for the time-tracking backend. It speaks
// the backend's wire schema verbatim; translation to the domain model is the
// mapper's job.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"time-tracker-client/internal/errors"
	"time-tracker-client/internal/logging"
)

// TokenSource supplies the session token for authenticated requests. It
// reports false when no session is stored.
type TokenSource func() (string, bool)

// Backend defines the operations the REST backend exposes to this client.
type Backend interface {
	// Auth operations
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Project operations
	ListProjects(ctx context.Context) ([]*Project, error)
	CreateProject(ctx context.Context, name string) (*Project, error)
	UpdateProject(ctx context.Context, id int64, name string) (*Project, error)

	// Time record operations
	ListTimeRecords(ctx context.Context) ([]*TimeRecord, error)
	CreateTimeRecord(ctx context.Context, rec NewTimeRecord) (*TimeRecord, error)
	PatchTimeRecord(ctx context.Context, id int64, patch RecordPatch) (*TimeRecord, error)
	DeleteTimeRecord(ctx context.Context, id int64) error
}

// httpBackend implements Backend over net/http.
type httpBackend struct {
	baseURL string
	token   TokenSource
	client  *http.Client
}

// Option configures the HTTP backend.
type Option func(*httpBackend)

// WithHTTPClient replaces the underlying http.Client, for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(b *httpBackend) { b.client = c }
}

// WithRequestTimeout sets the per-request timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(b *httpBackend) { b.client.Timeout = timeout }
}

// New creates a Backend talking to the given base URL. The token source is
// consulted on every request; unauthenticated requests (login, register) are
// sent without a token header.
func New(baseURL string, token TokenSource, opts ...Option) Backend {
	b := &httpBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Login exchanges credentials for a session token. The backend authenticates
// on username, so the email doubles as the username field.
func (b *httpBackend) Login(ctx context.Context, email, password string) (*Credentials, error) {
	req := LoginRequest{
		Username: email,
		Email:    email,
		Password: password,
	}

	var creds Credentials
	if err := b.do(ctx, http.MethodPost, "/auth/login", req, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Register creates a new user account.
func (b *httpBackend) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if err := b.do(ctx, http.MethodPost, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListProjects fetches all projects with their per-record duration digests.
func (b *httpBackend) ListProjects(ctx context.Context) ([]*Project, error) {
	var projects []*Project
	if err := b.do(ctx, http.MethodGet, "/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project with the given name.
func (b *httpBackend) CreateProject(ctx context.Context, name string) (*Project, error) {
	var project Project
	if err := b.do(ctx, http.MethodPost, "/projects/", NewProject{Name: name}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces the project's name.
func (b *httpBackend) UpdateProject(ctx context.Context, id int64, name string) (*Project, error) {
	var project Project
	path := fmt.Sprintf("/projects/%d/", id)
	if err := b.do(ctx, http.MethodPut, path, NewProject{Name: name}, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ListTimeRecords fetches all time records.
func (b *httpBackend) ListTimeRecords(ctx context.Context) ([]*TimeRecord, error) {
	var records []*TimeRecord
	if err := b.do(ctx, http.MethodGet, "/time_records/", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateTimeRecord creates a new time record.
func (b *httpBackend) CreateTimeRecord(ctx context.Context, rec NewTimeRecord) (*TimeRecord, error) {
	var created TimeRecord
	if err := b.do(ctx, http.MethodPost, "/time_records/", rec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// PatchTimeRecord sends a partial update covering only the changed fields.
// The backend applies last-write-wins semantics; there is no conflict
// detection for overlapping edits from concurrent sessions.
func (b *httpBackend) PatchTimeRecord(ctx context.Context, id int64, patch RecordPatch) (*TimeRecord, error) {
	var updated TimeRecord
	path := fmt.Sprintf("/time_records/%d/", id)
	if err := b.do(ctx, http.MethodPatch, path, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTimeRecord deletes a time record.
func (b *httpBackend) DeleteTimeRecord(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/time_records/%d/", id)
	return b.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs one request/response cycle: marshal the body, attach the token
// header, classify failures into the app error taxonomy, and decode the
// response into out when non-nil.
func (b *httpBackend) do(ctx context.Context, method, path string, body, out interface{}) error {
	operation := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WrapError(err, errors.ErrorTypeInvalidInput, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return errors.NewNetworkError(operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := b.token(); ok {
		req.Header.Set("Authorization", "Token "+token)
	}

	logging.Debugf("backend request: %s\n", operation)

	resp, err := b.client.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.NewTimeoutError(operation, b.client.Timeout)
		}
		return errors.NewNetworkError(operation, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(operation, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewNetworkError(operation, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// classifyStatus maps non-success status codes into the error taxonomy.
func classifyStatus(operation string, resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	detail := readErrorDetail(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		message := "authentication required"
		if detail != "" {
			message = detail
		}
		return errors.NewAuthError(message, nil).WithContext("operation", operation)
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError("resource", operation)
	case resp.StatusCode == http.StatusBadRequest:
		message := "the backend rejected the request"
		if detail != "" {
			message = detail
		}
		return errors.NewValidationError(message, nil).WithContext("operation", operation)
	default:
		return errors.NewNetworkError(operation, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
}

// readErrorDetail extracts a human-readable message from an error body, if
// the backend provided one.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if detail, ok := payload["detail"].(string); ok {
		return detail
	}
	return ""
}
