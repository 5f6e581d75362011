//go:build unit

package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ev-campus-client/internal/client"
	"ev-campus-client/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCredentials struct {
	credential string
}

func (s *staticCredentials) Credential() (string, bool) {
	return s.credential, s.credential != ""
}

func newPipeline(serverURL, credential string) *client.Pipeline {
	cfg := config.APIConfig{BaseURL: serverURL, Timeout: 2 * time.Second}
	return client.NewPipeline(cfg, &staticCredentials{credential: credential})
}

func TestPipelineAuthorizationHeader(t *testing.T) {
	t.Run("attaches bearer credential when session holds one", func(t *testing.T) {
		var gotHeader string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		p := newPipeline(srv.URL, "the-credential")
		require.NoError(t, p.Send(context.Background(), http.MethodGet, "/vehicles", nil, nil))
		assert.Equal(t, "Bearer the-credential", gotHeader)
	})

	t.Run("dispatches unauthenticated when no session", func(t *testing.T) {
		var gotHeader string
		var headerPresent bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("Authorization")
			_, headerPresent = r.Header["Authorization"]
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		p := newPipeline(srv.URL, "")
		require.NoError(t, p.Send(context.Background(), http.MethodGet, "/vehicles", nil, nil))
		assert.Empty(t, gotHeader)
		assert.False(t, headerPresent)
	})
}

func TestPipelineErrorTaxonomy(t *testing.T) {
	t.Run("rejected with message body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Invalid email or password."}`))
		}))
		defer srv.Close()

		err := newPipeline(srv.URL, "").Send(context.Background(), http.MethodPost, "/auth/login", nil, nil)
		require.ErrorIs(t, err, client.ErrRejected)
		assert.Equal(t, "Invalid email or password.", client.RejectedMessage(err, "fallback"))
	})

	t.Run("rejected with error body field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"Vehicle is already booked."}`))
		}))
		defer srv.Close()

		err := newPipeline(srv.URL, "").Send(context.Background(), http.MethodPost, "/bookings", nil, nil)
		require.ErrorIs(t, err, client.ErrRejected)
		assert.Equal(t, "Vehicle is already booked.", client.RejectedMessage(err, "fallback"))
	})

	t.Run("rejected without usable body falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("not json"))
		}))
		defer srv.Close()

		err := newPipeline(srv.URL, "").Send(context.Background(), http.MethodGet, "/vehicles", nil, nil)
		require.ErrorIs(t, err, client.ErrRejected)
		assert.Equal(t, "fallback", client.RejectedMessage(err, "fallback"))
	})

	t.Run("transport failure when server unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		srv.Close() // nothing listening anymore

		err := newPipeline(srv.URL, "").Send(context.Background(), http.MethodGet, "/vehicles", nil, nil)
		assert.ErrorIs(t, err, client.ErrTransport)
		assert.NotErrorIs(t, err, client.ErrRejected)
	})

	t.Run("malformed success body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"truncated":`))
		}))
		defer srv.Close()

		var out map[string]any
		err := newPipeline(srv.URL, "").Send(context.Background(), http.MethodGet, "/vehicles", nil, &out)
		assert.ErrorIs(t, err, client.ErrMalformed)
	})
}

func TestPipelineRequestShape(t *testing.T) {
	t.Run("serializes JSON body with content type", func(t *testing.T) {
		var gotContentType, gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			buf, _ := io.ReadAll(r.Body)
			gotBody = string(buf)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		p := newPipeline(srv.URL, "")
		err := p.Send(context.Background(), http.MethodPost, "/auth/login",
			map[string]string{"email": "alice@example.edu"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "application/json", gotContentType)
		assert.JSONEq(t, `{"email":"alice@example.edu"}`, gotBody)
	})
}
