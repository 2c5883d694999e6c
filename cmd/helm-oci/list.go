package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog"
)

const listDesc = `
List the chart repositories an OCI registry serves, one per line.

The registry is named by bare host, with an optional port:

helm oci list r.example.com
helm oci list localhost:5000
`

type listCmd struct {
	registry string
	out      io.Writer
	clientFn clientFactory
}

func newListCmd(clientFn clientFactory, out io.Writer) *cobra.Command {
	lc := listCmd{out: out, clientFn: clientFn}

	cmd := &cobra.Command{
		Use:                   "list [REGISTRY]",
		DisableFlagsInUseLine: true,
		Short:                 "list chart repositories of an OCI registry",
		Long:                  listDesc,
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lc.registry = args[0]
			return lc.run()
		},
	}
	return cmd
}

func (lc *listCmd) run() error {
	client, err := lc.clientFn()
	if err != nil {
		return err
	}

	repos, err := client.Catalog(lc.registry, credentials())
	if err != nil {
		klog.Errorf("failed to list repositories of %s : %s", lc.registry, err.Error())
		return errors.Wrapf(err, "failed to list repositories of %s", lc.registry)
	}

	for _, repo := range repos {
		fmt.Fprintln(lc.out, repo)
	}
	return nil
}
