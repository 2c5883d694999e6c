package printer

import (
	"fmt"
	"io"
	"strings"
)

const (
	repoColumnWidth = 50
	tagColumnWidth  = 20

	// maxTagsPerRow caps how many of a repository's tags are shown.
	maxTagsPerRow = 3
)

// NoTags marks repositories whose tag listing failed.
const NoTags = "N/A"

// RepoTable renders the two-column repository/tags listing. It writes
// only table rows; diagnostics belong on the log stream so piping the
// table stays clean.
type RepoTable struct {
	w io.Writer
}

func NewRepoTable(w io.Writer) *RepoTable {
	return &RepoTable{w: w}
}

// Header prints the column titles and a dash-filled separator row.
func (t *RepoTable) Header() {
	t.line("REPOSITORY", "TAGS")
	t.line(strings.Repeat("-", repoColumnWidth), strings.Repeat("-", tagColumnWidth))
}

// Row prints one repository with at most its first three tags.
func (t *RepoTable) Row(repo string, tags []string) {
	t.line(repo, FormatTags(tags))
}

// FailedRow prints a repository whose tag listing could not be fetched.
func (t *RepoTable) FailedRow(repo string) {
	t.line(repo, NoTags)
}

func (t *RepoTable) line(repo, tags string) {
	fmt.Fprintf(t.w, "%-*s%-*s\n", repoColumnWidth, repo, tagColumnWidth, tags)
}

// FormatTags joins at most the first three tags, keeping the order the
// registry returned them in.
func FormatTags(tags []string) string {
	if len(tags) > maxTagsPerRow {
		tags = tags[:maxTagsPerRow]
	}
	return strings.Join(tags, ",")
}
