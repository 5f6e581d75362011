package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"ev-campus-client/internal/pkg/config"
	"ev-campus-client/internal/pkg/errs"
)

// CredentialSource exposes the current bearer credential, if a session holds
// one. Satisfied by *session.Store.
type CredentialSource interface {
	Credential() (string, bool)
}

// Pipeline is the single outbound path to the remote API. It attaches the
// session credential, dispatches exactly once (no retries, no caching), and
// normalizes failures into the ErrTransport/ErrRejected/ErrMalformed
// taxonomy. It never mutates the session: a 401/403 does not log the user
// out, logout stays an explicit action.
type Pipeline struct {
	baseURL     string
	httpClient  *http.Client
	credentials CredentialSource
}

func NewPipeline(cfg config.APIConfig, credentials CredentialSource) *Pipeline {
	return &Pipeline{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		credentials: credentials,
	}
}

// Send issues method+path with an optional JSON body and decodes the success
// response into out when out is non-nil.
func (p *Pipeline) Send(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encoding request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "building request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential, ok := p.credentials.Credential(); ok {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errs.Mark(err, ErrTransport)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 && resp.StatusCode < 600 {
		return errs.Mark(&RejectedError{
			StatusCode:    resp.StatusCode,
			ServerMessage: decodeServerMessage(resp.Body),
		}, ErrRejected)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(err, ErrMalformed)
	}
	return nil
}

// Error bodies are JSON with a human message under either "message" (auth
// endpoints) or "error" (booking endpoints); both shapes are accepted and
// "message" wins when both are present.
func decodeServerMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
