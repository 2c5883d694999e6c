package provision

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseResolverVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name": "v1.5.0", "name": "v1.5.0"}`))
	}))
	defer server.Close()

	resolver := NewReleaseResolver(server.URL, "1.2.0")
	assert.Equal(t, "1.5.0", resolver.Version())
}

func TestReleaseResolverVersionNoPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "1.9.0"}`))
	}))
	defer server.Close()

	resolver := NewReleaseResolver(server.URL, "1.2.0")
	assert.Equal(t, "1.9.0", resolver.Version())
}

func TestReleaseResolverVersionFallback(t *testing.T) {
	failure := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer failure.Close()

	noTag := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "some release"}`))
	}))
	defer noTag.Close()

	unreachable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable.Close()

	tests := []struct {
		apiURL string
	}{
		{apiURL: failure.URL},
		{apiURL: noTag.URL},
		{apiURL: unreachable.URL},
	}

	for _, test := range tests {
		resolver := NewReleaseResolver(test.apiURL, "1.2.0")
		assert.Equal(t, "1.2.0", resolver.Version())
	}
}

func TestArchiveURL(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		url    string
		err    bool
	}{
		{
			goos:   "linux",
			goarch: "amd64",
			url:    "https://example.com/dl/v1.2.0/oras_1.2.0_linux_amd64.tar.gz",
		},
		{
			goos:   "darwin",
			goarch: "arm64",
			url:    "https://example.com/dl/v1.2.0/oras_1.2.0_darwin_arm64.tar.gz",
		},
		{
			goos:   "linux",
			goarch: "arm",
			url:    "https://example.com/dl/v1.2.0/oras_1.2.0_linux_armv7.tar.gz",
		},
		{
			goos:   "freebsd",
			goarch: "amd64",
			url:    "https://example.com/dl/v1.2.0/oras_1.2.0_freebsd_amd64.tar.gz",
		},
		{
			goos:   "windows",
			goarch: "amd64",
			err:    true,
		},
		{
			goos:   "linux",
			goarch: "mips",
			err:    true,
		},
	}

	for _, test := range tests {
		url, err := archiveURL("https://example.com/dl", "oras", "1.2.0", test.goos, test.goarch)
		if test.err {
			assert.NotNil(t, err)
			continue
		}
		assert.Nil(t, err)
		assert.Equal(t, test.url, url)
	}
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("archive bytes"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "archive.tar.gz")
	assert.Nil(t, download(server.URL+"/archive.tar.gz", dest))

	content, err := ioutil.ReadFile(dest)
	assert.Nil(t, err)
	assert.Equal(t, "archive bytes", string(content))
}

func TestDownloadNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "archive.tar.gz")
	err := download(server.URL+"/missing.tar.gz", dest)
	assert.NotNil(t, err)
}
