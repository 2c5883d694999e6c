package printer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTags(t *testing.T) {
	tests := []struct {
		tags      []string
		formatted string
	}{
		{
			tags:      []string{"1.2.3"},
			formatted: "1.2.3",
		},
		{
			tags:      []string{"1.2.3", "1.2.2"},
			formatted: "1.2.3,1.2.2",
		},
		{
			tags:      []string{"1.2.3", "1.2.2", "1.2.1"},
			formatted: "1.2.3,1.2.2,1.2.1",
		},
		{
			tags:      []string{"1.2.3", "1.2.2", "1.2.1", "1.2.0", "1.1.9"},
			formatted: "1.2.3,1.2.2,1.2.1",
		},
		{
			tags:      []string{},
			formatted: "",
		},
		{
			tags:      nil,
			formatted: "",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.formatted, FormatTags(test.tags))
	}
}

func TestRepoTableHeader(t *testing.T) {
	out := &bytes.Buffer{}
	table := NewRepoTable(out)
	table.Header()

	expected := fmt.Sprintf("%-50s%-20s\n", "REPOSITORY", "TAGS") +
		fmt.Sprintf("%-50s%-20s\n", strings.Repeat("-", 50), strings.Repeat("-", 20))
	assert.Equal(t, expected, out.String())
}

func TestRepoTableRow(t *testing.T) {
	tests := []struct {
		repo     string
		tags     []string
		expected string
	}{
		{
			repo:     "team/nginx",
			tags:     []string{"1.2.3", "1.2.2", "1.2.1", "1.2.0"},
			expected: fmt.Sprintf("%-50s%-20s\n", "team/nginx", "1.2.3,1.2.2,1.2.1"),
		},
		{
			repo:     "team/redis",
			tags:     []string{"6.0.1"},
			expected: fmt.Sprintf("%-50s%-20s\n", "team/redis", "6.0.1"),
		},
		{
			repo:     "team/empty",
			tags:     nil,
			expected: fmt.Sprintf("%-50s%-20s\n", "team/empty", ""),
		},
	}

	for _, test := range tests {
		out := &bytes.Buffer{}
		table := NewRepoTable(out)
		table.Row(test.repo, test.tags)
		assert.Equal(t, test.expected, out.String())
	}
}

func TestRepoTableFailedRow(t *testing.T) {
	out := &bytes.Buffer{}
	table := NewRepoTable(out)
	table.FailedRow("team/private")

	assert.Equal(t, fmt.Sprintf("%-50s%-20s\n", "team/private", "N/A"), out.String())
}
