package provision

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"gopkg.in/resty.v1"
	"k8s.io/klog"
)

const (
	releaseAPIURL   = "https://api.github.com/repos/oras-project/oras/releases/latest"
	downloadBaseURL = "https://github.com/oras-project/oras/releases/download"

	// DefaultToolVersion is installed when the latest-release lookup
	// fails, on an air-gapped host for example.
	DefaultToolVersion = "1.2.0"
)

// ReleaseResolver figures out which tool version to download.
type ReleaseResolver struct {
	apiURL   string
	fallback string
}

func NewReleaseResolver(apiURL, fallback string) *ReleaseResolver {
	return &ReleaseResolver{apiURL: apiURL, fallback: fallback}
}

// Version returns the latest published tool version. Any failure to
// reach or parse the release API degrades to the pinned fallback, it is
// never an error.
func (r *ReleaseResolver) Version() string {
	resp, err := resty.R().
		SetHeader("Accept", "application/vnd.github+json").
		Get(r.apiURL)
	if err != nil {
		klog.Warningf("failed to query %s, using pinned version %s : %s", r.apiURL, r.fallback, err.Error())
		return r.fallback
	}
	if !resp.IsSuccess() {
		klog.Warningf("release query %s returned %s, using pinned version %s", r.apiURL, resp.Status(), r.fallback)
		return r.fallback
	}
	tag := gjson.GetBytes(resp.Body(), "tag_name").String()
	if tag == "" {
		klog.Warningf("release response from %s carries no tag_name, using pinned version %s", r.apiURL, r.fallback)
		return r.fallback
	}
	return strings.TrimPrefix(tag, "v")
}

// releaseArches maps GOARCH values onto the architecture names the
// upstream release archives use.
var releaseArches = map[string]string{
	"amd64":   "amd64",
	"arm64":   "arm64",
	"arm":     "armv7",
	"s390x":   "s390x",
	"ppc64le": "ppc64le",
	"riscv64": "riscv64",
}

// archiveURL builds the release archive location for one version and
// platform, e.g. .../v1.2.0/oras_1.2.0_linux_amd64.tar.gz.
func archiveURL(base, tool, version, goos, goarch string) (string, error) {
	switch goos {
	case "linux", "darwin", "freebsd":
	default:
		return "", errors.Errorf("no %s release is published for %s", tool, goos)
	}
	arch, ok := releaseArches[goarch]
	if !ok {
		return "", errors.Errorf("no %s release is published for %s/%s", tool, goos, goarch)
	}
	return fmt.Sprintf("%s/v%s/%s_%s_%s_%s.tar.gz", base, version, tool, version, goos, arch), nil
}

// download fetches url into dest, which must be an absolute path.
func download(url, dest string) error {
	resp, err := resty.R().SetOutput(dest).Get(url)
	if err != nil {
		return errors.Wrapf(err, "failed to download %s", url)
	}
	if !resp.IsSuccess() {
		return errors.Errorf("failed to download %s : %s", url, resp.Status())
	}
	return nil
}
