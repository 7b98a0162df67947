package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReleaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/reviewgym/reviewgym/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/reviewgym/reviewgym/releases/tag/%s"}`, tag, tag)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck_UpdateAvailable(t *testing.T) {
	server := newReleaseServer(t, "v1.2.0")
	c := NewChecker(WithBaseURL(server.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Contains(t, result.ReleaseURL, "v1.2.0")
}

func TestCheck_AlreadyLatest(t *testing.T) {
	server := newReleaseServer(t, "v1.2.0")
	c := NewChecker(WithBaseURL(server.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_TagWithoutPrefix(t *testing.T) {
	server := newReleaseServer(t, "1.3.0")
	c := NewChecker(WithBaseURL(server.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.9"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_DevBuildAlwaysOutdated(t *testing.T) {
	// "dev" is not valid semver and normalizes to v0.0.0.
	server := newReleaseServer(t, "v0.1.0")
	c := NewChecker(WithBaseURL(server.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "dev"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	c := NewChecker(WithBaseURL(server.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCheck_EmptyTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tag_name":"","html_url":""}`)
	}))
	t.Cleanup(server.Close)
	c := NewChecker(WithBaseURL(server.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"", "v0.0.0"},
		{"dev", "v0.0.0"},
		{"not-a-version", "v0.0.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in), "input %q", tt.in)
	}
}
