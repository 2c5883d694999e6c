package registry

// ToolName is the registry client tool every operation is delegated to.
const ToolName = "oras"

// Credentials is an optional username/password pair passed through to the
// registry client tool verbatim. It is never stored or validated.
type Credentials struct {
	Username string
	Password string
}

// Flags returns the credential arguments forwarded to the tool. A partial
// pair, username or password alone, is dropped as if neither were given.
func (c Credentials) Flags() []string {
	if c.Username == "" || c.Password == "" {
		return nil
	}
	return []string{"--username", c.Username, "--password", c.Password}
}

// Client is the narrow seam in front of the external registry client
// tool. All registry protocol work, authentication included, happens on
// the other side of it.
type Client interface {
	// Catalog lists the repositories the registry reports it hosts.
	Catalog(reg string, creds Credentials) ([]string, error)
	// Tags lists the tags of one repository, in the order the registry
	// returns them.
	Tags(ref string, creds Credentials) ([]string, error)
	// Inspect fetches the raw manifest of a fully qualified chart
	// reference.
	Inspect(ref string, creds Credentials) ([]byte, error)
	// Version probes the underlying tool.
	Version() (string, error)
}
