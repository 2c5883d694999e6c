package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog"
)

const inspectDesc = `
Print the raw manifest of a chart stored in an OCI registry.

The chart is named by full reference, usually with a tag:

helm oci inspect r.example.com/team/nginx:1.2.3
`

type inspectCmd struct {
	ref      string
	out      io.Writer
	clientFn clientFactory
}

func newInspectCmd(clientFn clientFactory, out io.Writer) *cobra.Command {
	ic := inspectCmd{out: out, clientFn: clientFn}

	cmd := &cobra.Command{
		Use:                   "inspect [CHART]",
		DisableFlagsInUseLine: true,
		Short:                 "print the manifest of a chart",
		Long:                  inspectDesc,
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ic.ref = args[0]
			return ic.run()
		},
	}
	return cmd
}

func (ic *inspectCmd) run() error {
	client, err := ic.clientFn()
	if err != nil {
		return err
	}

	manifest, err := client.Inspect(ic.ref, credentials())
	if err != nil {
		klog.Errorf("failed to fetch manifest of %s : %s", ic.ref, err.Error())
		return errors.Wrapf(err, "failed to fetch manifest of %s", ic.ref)
	}

	if _, err := ic.out.Write(manifest); err != nil {
		return errors.Wrap(err, "failed to write manifest")
	}
	return nil
}
