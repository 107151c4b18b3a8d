package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// SeedBody mimics the upstream todos endpoint: numeric ids, extra fields
const SeedBody = `[
	{"userId":1,"id":1,"title":"delectus aut autem","completed":false},
	{"userId":1,"id":2,"title":"quis ut nam facilis","completed":true},
	{"userId":1,"id":3,"title":"fugiat veniam minus","completed":false}
]`

// SeedServer serves body with status and counts requests.
// The server is closed when the test ends.
func SeedServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}
