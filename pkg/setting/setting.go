package setting

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// Settings carries the environment the Helm host framework hands to the
// plugin. It is built once in main and passed explicitly into every
// component that needs paths or host binaries.
type Settings struct {
	// PluginDir is the installation root of the plugin, normally
	// $HELM_PLUGIN_DIR.
	PluginDir string
	// HelmBin is the helm executable that invoked the plugin.
	HelmBin string
	// Debug raises log verbosity.
	Debug bool
}

// New reads the plugin environment. Outside a helm invocation the plugin
// directory falls back to the executable's directory so the plugin stays
// usable standalone.
func New() *Settings {
	pluginDir := os.Getenv("HELM_PLUGIN_DIR")
	if pluginDir == "" {
		if exe, err := os.Executable(); err == nil {
			pluginDir = filepath.Dir(exe)
		} else {
			pluginDir = "."
		}
	}

	helmBin := os.Getenv("HELM_BIN")
	if helmBin == "" {
		helmBin = "helm"
	}

	debug := os.Getenv("HELM_DEBUG")
	return &Settings{
		PluginDir: pluginDir,
		HelmBin:   helmBin,
		Debug:     debug == "1" || debug == "true",
	}
}

// BinDir is where provisioned helper binaries live.
func (s *Settings) BinDir() string {
	return filepath.Join(s.PluginDir, "bin")
}

// Manifest mirrors the plugin.yaml fields the plugin reads back at
// runtime.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Usage       string `json:"usage"`
	Description string `json:"description"`
	Command     string `json:"command"`
}

// LoadManifest parses the plugin.yaml helm installed alongside the
// plugin binary.
func (s *Settings) LoadManifest() (*Manifest, error) {
	raw, err := ioutil.ReadFile(filepath.Join(s.PluginDir, "plugin.yaml"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read plugin manifest")
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(raw, manifest); err != nil {
		return nil, errors.Wrap(err, "failed to parse plugin manifest")
	}
	return manifest, nil
}
