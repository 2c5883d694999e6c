package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/rimusz/helm-oci-plugin/pkg/compat"
	"github.com/rimusz/helm-oci-plugin/pkg/registry"
	"github.com/rimusz/helm-oci-plugin/pkg/setting"
)

const versionDesc = `
Show the plugin version together with the registry client it provisioned
and the host helm it runs under.
`

type versionCmd struct {
	out      io.Writer
	clientFn clientFactory
	settings *setting.Settings
}

func newVersionCmd(clientFn clientFactory, settings *setting.Settings, out io.Writer) *cobra.Command {
	vc := versionCmd{out: out, clientFn: clientFn, settings: settings}

	cmd := &cobra.Command{
		Use:                   "version",
		DisableFlagsInUseLine: true,
		Short:                 "show plugin, registry client and helm versions",
		Long:                  versionDesc,
		Args:                  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return vc.run()
		},
	}
	return cmd
}

func (vc *versionCmd) run() error {
	manifest, err := vc.settings.LoadManifest()
	if err != nil {
		klog.V(1).Infof("failed to load plugin manifest : %s", err.Error())
		manifest = &setting.Manifest{Name: "oci"}
	}
	if manifest.Version != "" {
		fmt.Fprintf(vc.out, "%s plugin %s\n", manifest.Name, manifest.Version)
	} else {
		fmt.Fprintf(vc.out, "%s plugin\n", manifest.Name)
	}

	client, err := vc.clientFn()
	if err != nil {
		return err
	}
	toolVersion, err := client.Version()
	if err != nil {
		klog.Errorf("failed to get %s version : %s", registry.ToolName, err.Error())
		return errors.Wrapf(err, "failed to get %s version", registry.ToolName)
	}
	fmt.Fprintln(vc.out, toolVersion)

	if helmVersion := compat.HostVersion(vc.settings.HelmBin); helmVersion != "" {
		fmt.Fprintf(vc.out, "helm %s\n", helmVersion)
	}
	return nil
}
