package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mailboxvalidator/client-go/internal/apierrors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// failingBody is an io.ReadCloser that fails after the status line.
type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset by peer") }
func (failingBody) Close() error             { return nil }

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		NewRequestID: func() string { return "req-test" },
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: ""})
	if !errors.Is(err, apierrors.ErrMissingAPIKey) {
		t.Errorf("NewClient() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewClient_DefaultValues(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient != DefaultHTTPClient() {
		t.Error("httpClient is not the shared default client")
	}
	if DefaultHTTPClient().Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", DefaultHTTPClient().Timeout, DefaultTimeout)
	}
	if client.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %s, want %s", client.userAgent, DefaultUserAgent)
	}
	if client.logger == nil {
		t.Error("logger is nil")
	}
	if id := client.newRequestID(); len(id) != 36 {
		t.Errorf("request ID = %q, want a UUID", id)
	}
}

func TestNewClient_CustomValues(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 5 * time.Second}

	client, err := NewClient(Config{
		BaseURL:    "https://custom.example.com/",
		APIKey:     "custom-key",
		HTTPClient: customHTTPClient,
		UserAgent:  "custom-agent/1.0",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if client.httpClient != customHTTPClient {
		t.Error("httpClient not set correctly")
	}
	if client.BaseURL() != "https://custom.example.com" {
		t.Errorf("BaseURL() = %s, want trailing slash trimmed", client.BaseURL())
	}
	if client.userAgent != "custom-agent/1.0" {
		t.Errorf("userAgent = %s", client.userAgent)
	}
}

func TestClient_RequestURL(t *testing.T) {
	client, _ := NewClient(Config{APIKey: "k&y=1"})

	got := client.RequestURL(PathValidation, "first+last@example.com")
	want := "https://api.mailboxvalidator.com/v1/validation/single?email=first%2Blast%40example.com&key=k%26y%3D1&format=json"
	if got != want {
		t.Errorf("RequestURL() = %s, want %s", got, want)
	}

	redactedURL := client.RedactedURL(PathValidation, "first+last@example.com")
	if strings.Contains(redactedURL, "k%26y") {
		t.Errorf("RedactedURL() leaks the key: %s", redactedURL)
	}
	if !strings.Contains(redactedURL, "key=REDACTED") {
		t.Errorf("RedactedURL() = %s, want key=REDACTED", redactedURL)
	}
}

func TestClient_Get_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/test" {
			t.Errorf("path = %s, want /test", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("email") != "user@example.com" {
			t.Errorf("email = %s", q.Get("email"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %s, want test-key", q.Get("key"))
		}
		if q.Get("format") != "json" {
			t.Errorf("format = %s, want json", q.Get("format"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %s, want application/json", r.Header.Get("Accept"))
		}
		if r.Header.Get("User-Agent") != DefaultUserAgent {
			t.Errorf("User-Agent = %s", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("X-Request-ID") != "req-test" {
			t.Errorf("X-Request-ID = %s, want req-test", r.Header.Get("X-Request-ID"))
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"email_address":"user@example.com","error_code":"","error_message":""}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var result struct {
		EmailAddress string `json:"email_address"`
	}
	if err := client.Get(context.Background(), "/test", "user@example.com", &result); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if result.EmailAddress != "user@example.com" {
		t.Errorf("EmailAddress = %s", result.EmailAddress)
	}
}

func TestClient_Get_ErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		checkError func(t *testing.T, err error)
	}{
		{
			name:       "api error code",
			statusCode: http.StatusOK,
			body:       `{"email_address":"user@example.com","error_code":"101","error_message":"API key not found."}`,
			checkError: func(t *testing.T, err error) {
				var apiErr *apierrors.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected APIError, got %T", err)
				}
				if apiErr.Code != apierrors.CodeAPIKeyNotFound {
					t.Errorf("Code = %s, want 101", apiErr.Code)
				}
				if apiErr.Message != "API key not found." {
					t.Errorf("Message = %s", apiErr.Message)
				}
				if apiErr.RequestID != "req-test" {
					t.Errorf("RequestID = %s, want req-test", apiErr.RequestID)
				}
				if apiErr.Endpoint != "/test" {
					t.Errorf("Endpoint = %s, want /test", apiErr.Endpoint)
				}
			},
		},
		{
			name:       "numeric error code",
			statusCode: http.StatusOK,
			body:       `{"error_code":104,"error_message":"Insufficient credits."}`,
			checkError: func(t *testing.T, err error) {
				if !errors.Is(err, apierrors.ErrInsufficientCredits) {
					t.Errorf("expected ErrInsufficientCredits, got %v", err)
				}
			},
		},
		{
			name:       "error code with malformed other fields",
			statusCode: http.StatusOK,
			body:       `{"email_address":{"nested":true},"error_code":"102","error_message":"API key disabled."}`,
			checkError: func(t *testing.T, err error) {
				if !errors.Is(err, apierrors.ErrAPIKeyDisabled) {
					t.Errorf("expected ErrAPIKeyDisabled, got %v", err)
				}
			},
		},
		{
			name:       "error code outside the table",
			statusCode: http.StatusOK,
			body:       `{"error_code":"0","error_message":""}`,
			checkError: func(t *testing.T, err error) {
				if !errors.Is(err, apierrors.ErrUnknown) {
					t.Errorf("expected ErrUnknown, got %v", err)
				}
			},
		},
		{
			name:       "non-2xx with error code",
			statusCode: http.StatusUnauthorized,
			body:       `{"error_code":"103","error_message":"API key expired."}`,
			checkError: func(t *testing.T, err error) {
				if !errors.Is(err, apierrors.ErrAPIKeyExpired) {
					t.Errorf("expected ErrAPIKeyExpired, got %v", err)
				}
			},
		},
		{
			name:       "non-2xx without error code",
			statusCode: http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			checkError: func(t *testing.T, err error) {
				var httpErr *apierrors.HTTPError
				if !errors.As(err, &httpErr) {
					t.Fatalf("expected HTTPError, got %T", err)
				}
				if httpErr.StatusCode != http.StatusBadGateway {
					t.Errorf("StatusCode = %d, want 502", httpErr.StatusCode)
				}
				if string(httpErr.Body) != `<html>bad gateway</html>` {
					t.Errorf("Body = %s", httpErr.Body)
				}
			},
		},
		{
			name:       "truncated JSON",
			statusCode: http.StatusOK,
			body:       `{"email_address":"user@exam`,
			checkError: func(t *testing.T, err error) {
				var decErr *apierrors.DecodeError
				if !errors.As(err, &decErr) {
					t.Fatalf("expected DecodeError, got %T", err)
				}
				if string(decErr.Body) != `{"email_address":"user@exam` {
					t.Errorf("Body = %s, want raw body preserved", decErr.Body)
				}
			},
		},
		{
			name:       "not JSON",
			statusCode: http.StatusOK,
			body:       `Service temporarily unavailable`,
			checkError: func(t *testing.T, err error) {
				var decErr *apierrors.DecodeError
				if !errors.As(err, &decErr) {
					t.Fatalf("expected DecodeError, got %T", err)
				}
			},
		},
		{
			name:       "JSON null",
			statusCode: http.StatusOK,
			body:       `null`,
			checkError: func(t *testing.T, err error) {
				var decErr *apierrors.DecodeError
				if !errors.As(err, &decErr) {
					t.Fatalf("expected DecodeError, got %T", err)
				}
			},
		},
		{
			name:       "empty body",
			statusCode: http.StatusOK,
			body:       ``,
			checkError: func(t *testing.T, err error) {
				var decErr *apierrors.DecodeError
				if !errors.As(err, &decErr) {
					t.Fatalf("expected DecodeError, got %T", err)
				}
			},
		},
		{
			name:       "field of the wrong shape",
			statusCode: http.StatusOK,
			body:       `{"email_address":["a","b"],"error_code":""}`,
			checkError: func(t *testing.T, err error) {
				var decErr *apierrors.DecodeError
				if !errors.As(err, &decErr) {
					t.Fatalf("expected DecodeError, got %T", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)

			var result struct {
				EmailAddress string `json:"email_address"`
			}
			err := client.Get(context.Background(), "/test", "user@example.com", &result)
			if err == nil {
				t.Fatal("Get() error = nil, want error")
			}
			tt.checkError(t, err)
		})
	}
}

func TestClient_Get_NoRetry(t *testing.T) {
	var attempts int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var result struct{}
	if err := client.Get(context.Background(), "/test", "user@example.com", &result); err == nil {
		t.Fatal("expected error for 503 response")
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestClient_Get_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, _ := NewClient(Config{BaseURL: baseURL, APIKey: "secret-key"})

	var result struct{}
	err := client.Get(context.Background(), PathFree, "user@example.com", &result)

	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		t.Error("connection failure must not be an APIError")
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("error leaks the API key: %v", err)
	}
	if !strings.Contains(netErr.URL, "key=REDACTED") {
		t.Errorf("URL = %s, want redacted key", netErr.URL)
	}
}

func TestClient_Get_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var result struct{}
	err := client.Get(ctx, "/test", "user@example.com", &result)

	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestClient_Get_BodyReadFailure(t *testing.T) {
	client, _ := NewClient(Config{
		APIKey: "test-key",
		HTTPClient: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return &http.Response{StatusCode: http.StatusOK, Body: failingBody{}, Header: http.Header{}}, nil
		}),
	})

	var result struct{}
	err := client.Get(context.Background(), PathValidation, "user@example.com", &result)

	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T", err)
	}
	if netErr.Op != "read" {
		t.Errorf("Op = %s, want read", netErr.Op)
	}
}

func TestClient_Get_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"email_address":"`)
		io.WriteString(w, strings.Repeat("a", MaxResponseBytes))
		io.WriteString(w, `"}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	var result struct{}
	err := client.Get(context.Background(), "/test", "user@example.com", &result)

	var decErr *apierrors.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %T", err)
	}
	if len(decErr.Body) != MaxResponseBytes {
		t.Errorf("len(Body) = %d, want %d", len(decErr.Body), MaxResponseBytes)
	}
}
