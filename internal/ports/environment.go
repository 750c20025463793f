package ports

// EnvironmentPort isolates process-wide lookups so callers can inject a
// fixed cache root without touching the real environment.
type EnvironmentPort interface {
	// HomeOverride returns the XARGO_HOME cache root, if set.
	HomeOverride() (string, bool)
	UserHomeDir() (string, error)
	LookupEnv(key string) (string, bool)
}
