package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsFlags(t *testing.T) {
	tests := []struct {
		creds Credentials
		flags []string
	}{
		{
			creds: Credentials{Username: "admin", Password: "secret"},
			flags: []string{"--username", "admin", "--password", "secret"},
		},
		{
			creds: Credentials{Username: "admin"},
			flags: nil,
		},
		{
			creds: Credentials{Password: "secret"},
			flags: nil,
		},
		{
			creds: Credentials{},
			flags: nil,
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.flags, test.creds.Flags())
	}
}
