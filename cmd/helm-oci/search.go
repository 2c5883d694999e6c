package main

import (
	"io"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog"

	"github.com/rimusz/helm-oci-plugin/pkg/printer"
	"github.com/rimusz/helm-oci-plugin/pkg/registry"
)

const searchDesc = `
Search the chart repositories of an OCI registry and show their tags.

With a bare registry host every repository is listed; an optional second
argument narrows the catalog with a regular expression:

helm oci search r.example.com
helm oci search r.example.com 'nginx.*'

A first argument containing a slash names one repository inside the
registry and only its tags are shown:

helm oci search r.example.com/team/nginx

At most three tags are shown per repository, in registry order. A
repository whose tags cannot be read shows N/A and the search goes on.
`

type searchCmd struct {
	target   string
	pattern  string
	out      io.Writer
	clientFn clientFactory
}

func newSearchCmd(clientFn clientFactory, out io.Writer) *cobra.Command {
	sc := searchCmd{out: out, clientFn: clientFn}

	cmd := &cobra.Command{
		Use:                   "search [REGISTRY[/REPOSITORY]] [PATTERN]",
		DisableFlagsInUseLine: true,
		Short:                 "search chart repositories and their tags",
		Long:                  searchDesc,
		Args:                  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.target = args[0]
			if len(args) == 2 {
				sc.pattern = args[1]
			}
			return sc.run()
		},
	}
	return cmd
}

func (sc *searchCmd) run() error {
	// A slash-bearing target without a pattern names one repository.
	// With a pattern present the whole target is the registry again and
	// the catalog branch handles it.
	_, repo := registry.SplitReference(sc.target)
	if repo != "" && sc.pattern == "" {
		return sc.searchRepository(repo)
	}
	return sc.searchCatalog()
}

func (sc *searchCmd) searchRepository(repo string) error {
	client, err := sc.clientFn()
	if err != nil {
		return err
	}

	tags, err := client.Tags(sc.target, credentials())
	if err != nil {
		klog.Errorf("failed to list tags of %s, the registry likely requires authentication, retry with --username and --password : %s",
			sc.target, err.Error())
		return errors.Wrapf(err, "failed to list tags of %s", sc.target)
	}

	table := printer.NewRepoTable(sc.out)
	table.Header()
	table.Row(repo, tags)
	return nil
}

func (sc *searchCmd) searchCatalog() error {
	matcher, err := compilePattern(sc.pattern)
	if err != nil {
		return err
	}

	client, err := sc.clientFn()
	if err != nil {
		return err
	}

	repos, err := client.Catalog(sc.target, credentials())
	if err != nil {
		klog.Errorf("failed to list repositories of %s, the registry likely requires authentication, retry with --username and --password or check your docker credential store : %s",
			sc.target, err.Error())
		return errors.Wrapf(err, "failed to list repositories of %s", sc.target)
	}

	matched := filterRepositories(repos, matcher)
	if len(matched) == 0 {
		if sc.pattern != "" {
			klog.Warningf("no repository of %s matches %q", sc.target, sc.pattern)
		} else {
			klog.Warningf("no repositories found in %s", sc.target)
		}
		return nil
	}

	table := printer.NewRepoTable(sc.out)
	table.Header()
	for _, repo := range matched {
		tags, err := client.Tags(sc.target+"/"+repo, credentials())
		if err != nil {
			klog.Warningf("failed to list tags of %s/%s : %s", sc.target, repo, err.Error())
			table.FailedRow(repo)
			continue
		}
		table.Row(repo, tags)
	}
	return nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	matcher, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid search pattern %q", pattern)
	}
	return matcher, nil
}

func filterRepositories(repos []string, matcher *regexp.Regexp) []string {
	if matcher == nil {
		return repos
	}
	matched := []string{}
	for _, repo := range repos {
		if matcher.MatchString(repo) {
			matched = append(matched, repo)
		}
	}
	return matched
}
