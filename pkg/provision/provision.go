package provision

import (
	"io"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog"

	"github.com/rimusz/helm-oci-plugin/pkg/registry"
	"github.com/rimusz/helm-oci-plugin/pkg/setting"
)

// ProbeFunc checks that the binary at path answers its version command.
type ProbeFunc func(path string) (string, error)

// LookPathFunc searches the system path for an executable.
type LookPathFunc func(file string) (string, error)

// ExecFunc runs a command and returns its standard output.
type ExecFunc func(name string, args ...string) ([]byte, error)

// Provisioner makes sure a working registry client binary sits at the
// plugin-local path, installing one if it has to. Strategies run in a
// fixed priority order; the first success wins and there are no retries.
type Provisioner struct {
	settings *setting.Settings
	releases *ReleaseResolver
	probe    ProbeFunc
	lookPath LookPathFunc
	execute  ExecFunc
	base     string
	goos     string
	goarch   string
}

func NewProvisioner(settings *setting.Settings) *Provisioner {
	return &Provisioner{
		settings: settings,
		releases: NewReleaseResolver(releaseAPIURL, DefaultToolVersion),
		probe: func(path string) (string, error) {
			return registry.NewOrasClient(path).Version()
		},
		lookPath: exec.LookPath,
		execute:  runCommand,
		base:     downloadBaseURL,
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
	}
}

// Ensure returns the path of a verified registry client binary, running
// the install strategies in order until one succeeds. All strategies
// exhausted is fatal for the caller; there is nothing to retry.
func (p *Provisioner) Ensure() (string, error) {
	var lastErr error
	for _, s := range p.strategies() {
		binPath, err := s.locate()
		if err != nil {
			klog.V(1).Infof("install strategy %s: %s", s.name(), err.Error())
			lastErr = err
			continue
		}
		out, err := p.probe(binPath)
		if err != nil {
			klog.Errorf("%s at %s failed its version probe : %s", registry.ToolName, binPath, err.Error())
			return "", errors.Wrapf(err, "%s at %s failed its version probe", registry.ToolName, binPath)
		}
		klog.V(1).Infof("using %s at %s via %s strategy (%s)", registry.ToolName, binPath, s.name(), firstLine(out))
		return binPath, nil
	}
	return "", errors.Wrapf(lastErr, "unable to provision %s, all install strategies failed", registry.ToolName)
}

func (p *Provisioner) strategies() []strategy {
	dest := filepath.Join(p.settings.BinDir(), registry.ToolName)
	list := []strategy{
		existingLocal{path: dest, probe: p.probe},
		existingOnPath{tool: registry.ToolName, dest: dest, lookPath: p.lookPath},
	}
	if p.goos == "darwin" {
		list = append(list, packageManager{tool: registry.ToolName, dest: dest, execute: p.execute, lookPath: p.lookPath})
	}
	return append(list, directDownload{
		tool:     registry.ToolName,
		dest:     dest,
		releases: p.releases,
		base:     p.base,
		goos:     p.goos,
		goarch:   p.goarch,
	})
}

type strategy interface {
	name() string
	// locate returns the path of a binary this strategy made available,
	// installing or linking it first when needed.
	locate() (string, error)
}

// existingLocal reuses a binary already provisioned at the plugin-local
// path, provided it still answers its version probe.
type existingLocal struct {
	path  string
	probe ProbeFunc
}

func (s existingLocal) name() string { return "existing-local" }

func (s existingLocal) locate() (string, error) {
	if _, err := os.Stat(s.path); err != nil {
		return "", err
	}
	if _, err := s.probe(s.path); err != nil {
		return "", errors.Wrapf(err, "existing binary %s failed its version probe", s.path)
	}
	return s.path, nil
}

// existingOnPath links a system-wide install of the tool into the
// plugin-local path.
type existingOnPath struct {
	tool     string
	dest     string
	lookPath LookPathFunc
}

func (s existingOnPath) name() string { return "existing-on-path" }

func (s existingOnPath) locate() (string, error) {
	src, err := s.lookPath(s.tool)
	if err != nil {
		return "", errors.Wrapf(err, "%s not found on PATH", s.tool)
	}
	if err := alias(src, s.dest); err != nil {
		return "", err
	}
	klog.V(1).Infof("linked %s to %s", s.dest, src)
	return s.dest, nil
}

// packageManager installs the tool through Homebrew and links the result
// locally. Only wired in on darwin.
type packageManager struct {
	tool     string
	dest     string
	execute  ExecFunc
	lookPath LookPathFunc
}

func (s packageManager) name() string { return "package-manager" }

func (s packageManager) locate() (string, error) {
	if _, err := s.execute("brew", "install", s.tool); err != nil {
		return "", errors.Wrapf(err, "brew install %s failed", s.tool)
	}

	src := ""
	if out, err := s.execute("brew", "--prefix", s.tool); err == nil {
		candidate := filepath.Join(strings.TrimSpace(string(out)), "bin", s.tool)
		if _, err := os.Stat(candidate); err == nil {
			src = candidate
		}
	}
	if src == "" {
		found, err := s.lookPath(s.tool)
		if err != nil {
			return "", errors.Wrapf(err, "%s installed but not locatable", s.tool)
		}
		src = found
	}

	if err := alias(src, s.dest); err != nil {
		return "", err
	}
	return s.dest, nil
}

// directDownload fetches a release archive for this platform and installs
// the binary it contains.
type directDownload struct {
	tool     string
	dest     string
	releases *ReleaseResolver
	base     string
	goos     string
	goarch   string
}

func (s directDownload) name() string { return "direct-download" }

func (s directDownload) locate() (string, error) {
	version := s.releases.Version()
	url, err := archiveURL(s.base, s.tool, version, s.goos, s.goarch)
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "helm-oci-")
	if err != nil {
		return "", errors.Wrap(err, "failed to create download directory")
	}
	defer os.RemoveAll(tmpDir)

	klog.V(1).Infof("downloading %s", url)
	archivePath := filepath.Join(tmpDir, path.Base(url))
	if err := download(url, archivePath); err != nil {
		return "", err
	}

	binPath, err := extractTool(archivePath, tmpDir, s.tool)
	if err != nil {
		return "", err
	}
	if err := install(binPath, s.dest); err != nil {
		return "", err
	}
	return s.dest, nil
}

// alias points the plugin-local path at an existing system binary,
// replacing whatever stale file sits there.
func alias(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(dst))
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to replace %s", dst)
	}
	if err := os.Symlink(src, dst); err != nil {
		return errors.Wrapf(err, "failed to link %s to %s", dst, src)
	}
	return nil
}

// install copies src into place executable. A plain copy rather than a
// rename, the temp dir usually lives on another filesystem.
func install(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, "failed to create %s", filepath.Dir(dst))
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to replace %s", dst)
	}

	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", src)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0755)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, "failed to install %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "failed to install %s", dst)
	}
	return nil
}

func runCommand(name string, args ...string) ([]byte, error) {
	out, err := exec.Command(name, args...).Output()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return out, errors.Errorf("%s %s: %s", name, strings.Join(args, " "),
			strings.TrimSpace(string(exitErr.Stderr)))
	}
	return out, err
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}
