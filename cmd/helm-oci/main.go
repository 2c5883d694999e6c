package main

import (
	"flag"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/rimusz/helm-oci-plugin/pkg/compat"
	"github.com/rimusz/helm-oci-plugin/pkg/provision"
	"github.com/rimusz/helm-oci-plugin/pkg/registry"
	"github.com/rimusz/helm-oci-plugin/pkg/setting"
)

const rootDesc = `
Browse helm charts stored in OCI container registries.

The plugin wraps a registry client binary and provisions one on first
use, so no manual install is needed.

[list all chart repositories of a registry]
helm oci list r.example.com

[search repositories, optionally filtered by a regular expression]
helm oci search r.example.com
helm oci search r.example.com 'nginx.*'

[show the tags of one repository]
helm oci search r.example.com/team/nginx

[print a chart manifest]
helm oci inspect r.example.com/team/nginx:1.2.3

Private registries take --username and --password; both must be set for
the credentials to be forwarded.
`

// Credentials shared by every subcommand, bound once on the root.
var (
	username string
	password string
)

// clientFactory defers creating the registry client until a command
// actually needs one, so help and usage paths never provision a binary.
type clientFactory func() (registry.Client, error)

func newRootCmd(clientFn clientFactory, settings *setting.Settings, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oci",
		Short: "browse helm charts in OCI registries",
		Long:  rootDesc,
	}
	cmd.PersistentFlags().StringVarP(&username, "username", "u", "", "registry username, forwarded only together with --password")
	cmd.PersistentFlags().StringVarP(&password, "password", "p", "", "registry password, forwarded only together with --username")

	cmd.AddCommand(newListCmd(clientFn, out))
	cmd.AddCommand(newSearchCmd(clientFn, out))
	cmd.AddCommand(newInspectCmd(clientFn, out))
	cmd.AddCommand(newVersionCmd(clientFn, settings, out))
	return cmd
}

func credentials() registry.Credentials {
	return registry.Credentials{Username: username, Password: password}
}

func defaultClientFactory(settings *setting.Settings) clientFactory {
	return func() (registry.Client, error) {
		compat.WarnIfUnsupported(settings.HelmBin)
		binPath, err := provision.NewProvisioner(settings).Ensure()
		if err != nil {
			klog.Errorf("failed to provision %s : %s", registry.ToolName, err.Error())
			return nil, err
		}
		return registry.NewOrasClient(binPath), nil
	}
}

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")

	settings := setting.New()
	if settings.Debug {
		flag.Set("v", "2")
	}

	cmd := newRootCmd(defaultClientFactory(settings), settings, os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
