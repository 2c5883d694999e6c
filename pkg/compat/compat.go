// Package compat checks the host helm install against the oldest release
// this plugin supports. Checks only ever warn, they never block a command.
package compat

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/blang/semver/v4"
	"k8s.io/klog"
)

var minHelmVersion = semver.MustParse("3.8.0")

// HostVersion reports the version of the helm binary driving this plugin,
// or "" when it cannot be determined.
func HostVersion(helmBin string) string {
	out, err := exec.Command(helmBin, "version", "--template", "{{.Version}}").Output()
	if err != nil {
		klog.V(1).Infof("failed to get version of %s : %s", helmBin, err.Error())
		return ""
	}
	return strings.TrimSpace(string(out))
}

// WarnIfUnsupported logs a warning when the host helm predates native OCI
// support. Version probing is best effort, failures stay silent.
func WarnIfUnsupported(helmBin string) {
	if msg := unsupportedMessage(HostVersion(helmBin)); msg != "" {
		klog.Warning(msg)
	}
}

func unsupportedMessage(raw string) string {
	if raw == "" {
		return ""
	}
	version, err := semver.ParseTolerant(raw)
	if err != nil {
		klog.V(1).Infof("unparsable helm version %q : %s", raw, err.Error())
		return ""
	}
	if version.LT(minHelmVersion) {
		return fmt.Sprintf("helm %s predates v%s, native OCI support may be missing or incomplete", raw, minHelmVersion)
	}
	return ""
}
