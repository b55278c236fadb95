package checker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/mdlinkcheck/internal/model"
)

// statusServer returns a server that answers every request with code.
func statusServer(t *testing.T, code int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// TestExternalCheckerStatusBoundary tests that status 399 passes and 400 fails.
func TestExternalCheckerStatusBoundary(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		code     int
		expected model.Status
	}{
		{http.StatusOK, model.StatusOK},
		{http.StatusNoContent, model.StatusOK},
		{399, model.StatusOK},
		{http.StatusBadRequest, model.StatusBroken},
		{http.StatusNotFound, model.StatusBroken},
		{http.StatusMethodNotAllowed, model.StatusBroken},
		{http.StatusInternalServerError, model.StatusBroken},
	}

	for _, tc := range testCases {
		t.Run(strconv.Itoa(tc.code), func(t *testing.T) {
			t.Parallel()

			srv := statusServer(t, tc.code)
			c := NewExternalChecker()

			res := c.Check(context.Background(), srv.URL)
			if res.Status != tc.expected {
				t.Errorf("status %d: got %s, expected %s", tc.code, res.Status, tc.expected)
			}
			if res.StatusCode != tc.code {
				t.Errorf("expected status code %d, got %d", tc.code, res.StatusCode)
			}
			if tc.expected == model.StatusBroken && res.ErrorKind != model.ErrorKindHTTPStatus {
				t.Errorf("expected error kind %q, got %q", model.ErrorKindHTTPStatus, res.ErrorKind)
			}
		})
	}
}

// TestExternalCheckerUsesHEAD tests that probes are HEAD requests.
func TestExternalCheckerUsesHEAD(t *testing.T) {
	t.Parallel()

	methods := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods <- r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	NewExternalChecker().Check(context.Background(), srv.URL)

	if got := <-methods; got != http.MethodHead {
		t.Errorf("expected HEAD request, got %s", got)
	}
}

// TestExternalCheckerRedirects tests that redirects are followed.
func TestExternalCheckerRedirects(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/missing", http.StatusFound)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewExternalChecker(WithMaxRedirects(3))

	t.Run("redirect to existing page is OK", func(t *testing.T) {
		t.Parallel()
		res := c.Check(context.Background(), srv.URL+"/moved")
		if !res.OK() {
			t.Errorf("expected OK, got %s (%v)", res.Status, res.Err)
		}
		if res.StatusCode != http.StatusOK {
			t.Errorf("expected final status code 200, got %d", res.StatusCode)
		}
	})

	t.Run("redirect to missing page is broken", func(t *testing.T) {
		t.Parallel()
		res := c.Check(context.Background(), srv.URL+"/gone")
		if res.Status != model.StatusBroken || res.StatusCode != http.StatusNotFound {
			t.Errorf("expected BROKEN with 404, got %s with %d (%v)", res.Status, res.StatusCode, res.Err)
		}
		if res.ErrorKind != model.ErrorKindHTTPStatus {
			t.Errorf("expected error kind %q, got %q", model.ErrorKindHTTPStatus, res.ErrorKind)
		}
	})

	t.Run("redirect loop is broken", func(t *testing.T) {
		t.Parallel()
		res := c.Check(context.Background(), srv.URL+"/loop")
		if res.Status != model.StatusBroken {
			t.Errorf("expected BROKEN, got %s", res.Status)
		}
		if res.ErrorKind != model.ErrorKindOther {
			t.Errorf("expected error kind %q, got %q", model.ErrorKindOther, res.ErrorKind)
		}
		if res.Err == nil || !strings.Contains(res.Err.Error(), "stopped after 3 redirects") {
			t.Errorf("expected redirect limit error, got %v", res.Err)
		}
	})
}

// TestExternalCheckerNetworkFailures tests that network errors are BROKEN.
func TestExternalCheckerNetworkFailures(t *testing.T) {
	t.Parallel()

	t.Run("timeout is broken", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewExternalChecker(WithTimeout(50 * time.Millisecond))
		res := c.Check(context.Background(), srv.URL)
		if res.Status != model.StatusBroken {
			t.Errorf("expected BROKEN, got %s", res.Status)
		}
		if res.ErrorKind != model.ErrorKindTimeout {
			t.Errorf("expected error kind %q, got %q", model.ErrorKindTimeout, res.ErrorKind)
		}
	})

	t.Run("connection refused is broken", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		res := NewExternalChecker().Check(context.Background(), url)
		if res.Status != model.StatusBroken {
			t.Errorf("expected BROKEN, got %s", res.Status)
		}
		if res.ErrorKind != model.ErrorKindConnection {
			t.Errorf("expected error kind %q, got %q", model.ErrorKindConnection, res.ErrorKind)
		}
	})

	t.Run("malformed URL is broken", func(t *testing.T) {
		t.Parallel()

		res := NewExternalChecker().Check(context.Background(), "http://exa mple.com")
		if res.Status != model.StatusBroken {
			t.Errorf("expected BROKEN, got %s", res.Status)
		}
		if res.ErrorKind != model.ErrorKindInvalidURL {
			t.Errorf("expected error kind %q, got %q", model.ErrorKindInvalidURL, res.ErrorKind)
		}
	})

	t.Run("cancelled context is broken", func(t *testing.T) {
		t.Parallel()

		srv := statusServer(t, http.StatusOK)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if res := NewExternalChecker().Check(ctx, srv.URL); res.Status != model.StatusBroken {
			t.Errorf("expected BROKEN, got %s", res.Status)
		}
	})
}

// TestClassifyNetError tests mapping of errors to kinds.
func TestClassifyNetError(t *testing.T) {
	t.Parallel()

	if got := ClassifyNetError(nil); got != model.ErrorKindNone {
		t.Errorf("expected none, got %q", got)
	}
	if got := ClassifyNetError(context.DeadlineExceeded); got != model.ErrorKindTimeout {
		t.Errorf("expected timeout, got %q", got)
	}
	if got := ClassifyNetError(context.Canceled); got != model.ErrorKindOther {
		t.Errorf("expected other, got %q", got)
	}
}
