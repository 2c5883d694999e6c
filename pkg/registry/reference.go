package registry

import "strings"

// SplitReference splits a user-supplied reference on the first path
// separator. host is the registry host[:port]; repo is empty when the
// reference names a bare registry. No further validation happens here,
// the registry client tool is the authority on what a reference means.
func SplitReference(ref string) (host, repo string) {
	if i := strings.Index(ref, "/"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}
