package llm

// Credential is either Configured (it holds a usable API key) or
// Unconfigured. It is decided once at startup and never re-checked.
type Credential struct {
	key string
}

// Configured returns a credential carrying key. An empty key yields Unconfigured.
func Configured(key string) Credential {
	return Credential{key: key}
}

// Unconfigured returns the credential used when no usable key exists.
func Unconfigured() Credential {
	return Credential{}
}

// IsConfigured reports whether real completions can be requested.
func (c Credential) IsConfigured() bool {
	return c.key != ""
}

// Key returns the API key, or "" when unconfigured.
func (c Credential) Key() string {
	return c.key
}

// String never prints the key.
func (c Credential) String() string {
	if c.IsConfigured() {
		return "Configured"
	}
	return "Unconfigured"
}
