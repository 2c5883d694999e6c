package registry

import (
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// OrasClient implements Client by invoking the oras binary, one child
// process per operation, synchronously and without a timeout. Errors
// carry the exact failed invocation so an operator can replay it.
type OrasClient struct {
	bin string
}

// NewOrasClient wraps the oras binary at bin.
func NewOrasClient(bin string) *OrasClient {
	return &OrasClient{bin: bin}
}

func (c *OrasClient) Catalog(reg string, creds Credentials) ([]string, error) {
	out, err := c.run(catalogArgs(reg, creds))
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (c *OrasClient) Tags(ref string, creds Credentials) ([]string, error) {
	out, err := c.run(tagsArgs(ref, creds))
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (c *OrasClient) Inspect(ref string, creds Credentials) ([]byte, error) {
	return c.run(inspectArgs(ref, creds))
}

func (c *OrasClient) Version() (string, error) {
	out, err := c.run([]string{"version"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func catalogArgs(reg string, creds Credentials) []string {
	return append([]string{"repo", "ls", reg}, creds.Flags()...)
}

func tagsArgs(ref string, creds Credentials) []string {
	return append([]string{"repo", "tags", ref}, creds.Flags()...)
}

func inspectArgs(ref string, creds Credentials) []string {
	return append([]string{"manifest", "fetch", ref}, creds.Flags()...)
}

// run captures the child's stdout and folds its stderr into the returned
// error together with the full command line.
func (c *OrasClient) run(args []string) ([]byte, error) {
	out, err := exec.Command(c.bin, args...).Output()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return out, errors.Errorf("`%s` failed: %s", c.invocation(args),
			strings.TrimSpace(string(exitErr.Stderr)))
	}
	if err != nil {
		return out, errors.Wrapf(err, "failed to run `%s`", c.invocation(args))
	}
	return out, nil
}

func (c *OrasClient) invocation(args []string) string {
	return strings.Join(append([]string{c.bin}, args...), " ")
}

// splitLines turns the tool's raw listing output into trimmed non-empty
// lines, preserving their order.
func splitLines(out []byte) []string {
	lines := []string{}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
