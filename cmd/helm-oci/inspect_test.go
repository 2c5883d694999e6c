package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rimusz/helm-oci-plugin/pkg/registry"
	"github.com/rimusz/helm-oci-plugin/pkg/registry/mocks"
)

func TestInspectPrintsManifest(t *testing.T) {
	manifest := `{"schemaVersion":2,"config":{"mediaType":"application/vnd.cncf.helm.config.v1+json"}}`

	client := &mocks.Client{}
	client.On("Inspect", "r.example.com/team/nginx:1.2.3", registry.Credentials{}).
		Return([]byte(manifest), nil)

	out, err := executeCommand(t, client, "inspect", "r.example.com/team/nginx:1.2.3")
	assert.Nil(t, err)
	assert.Equal(t, manifest, out)
	client.AssertExpectations(t)
}

func TestInspectForwardsCredentials(t *testing.T) {
	creds := registry.Credentials{Username: "admin", Password: "secret"}

	client := &mocks.Client{}
	client.On("Inspect", "r.example.com/team/nginx:1.2.3", creds).
		Return([]byte("{}"), nil)

	out, err := executeCommand(t, client, "inspect", "r.example.com/team/nginx:1.2.3",
		"--username", "admin", "--password", "secret")
	assert.Nil(t, err)
	assert.Equal(t, "{}", out)
	client.AssertExpectations(t)
}

func TestInspectError(t *testing.T) {
	client := &mocks.Client{}
	client.On("Inspect", "r.example.com/team/nginx:9.9.9", registry.Credentials{}).
		Return(nil, errors.New("manifest unknown"))

	out, err := executeCommand(t, client, "inspect", "r.example.com/team/nginx:9.9.9")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "failed to fetch manifest of r.example.com/team/nginx:9.9.9")
	assert.Empty(t, out)
	client.AssertExpectations(t)
}
