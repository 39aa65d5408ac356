package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteLimiter_Limit(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		burst          int
		requests       int
		expectedStatus []int
	}{
		{
			name:           "writes within burst",
			method:         http.MethodPost,
			burst:          3,
			requests:       3,
			expectedStatus: []int{201, 201, 201},
		},
		{
			name:           "write past burst rejected",
			method:         http.MethodDelete,
			burst:          2,
			requests:       4,
			expectedStatus: []int{201, 201, 429, 429},
		},
		{
			name:           "reads never limited",
			method:         http.MethodGet,
			burst:          1,
			requests:       5,
			expectedStatus: []int{201, 201, 201, 201, 201},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 0.001 rps leaves no room for refill during the test
			l := NewWriteLimiter(0.001, tt.burst)
			handler := l.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			}))

			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest(tt.method, "/questions", nil)
				req.RemoteAddr = "192.168.1.1:12345"
				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, req)

				if rr.Code != tt.expectedStatus[i] {
					t.Errorf("request %d: got status %d, want %d", i+1, rr.Code, tt.expectedStatus[i])
				}
				if rr.Code == http.StatusTooManyRequests {
					assert.NotEmpty(t, rr.Header().Get("Retry-After"))
					assert.Empty(t, rr.Body.String())
				}
			}
		})
	}
}

func TestWriteLimiter_PerClient(t *testing.T) {
	l := NewWriteLimiter(0.001, 1)
	handler := l.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(addr, xff string) int {
		req := httptest.NewRequest(http.MethodPut, "/questions/1", nil)
		req.RemoteAddr = addr
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1", ""))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:2", ""))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1", ""))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:3", "203.0.113.9, 10.0.0.1"))
	assert.Equal(t, 3, l.Clients())
}

func TestWriteLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewWriteLimiter(1, 1)
	l.now = func() time.Time { return now }

	l.allow("a")
	now = now.Add(9 * time.Minute)
	l.allow("b")
	now = now.Add(2 * time.Minute)

	assert.Equal(t, 1, l.Cleanup())
	assert.Equal(t, 1, l.Clients())
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "192.168.1.1:1234", nil, "192.168.1.1"},
		{"forwarded for", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, "203.0.113.1"},
		{"real ip", "10.0.0.1:1", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
		{"bad forwarded falls back", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "garbage"}, "10.0.0.1"},
		{"no port", "10.0.0.3", nil, "10.0.0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}
