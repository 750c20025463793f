package ports

// ConfigFilePort locates and decodes TOML configuration files.
type ConfigFilePort interface {
	// Search walks from start towards the filesystem root and returns the
	// first directory containing name.
	Search(start string, name string) (string, bool)
	Parse(path string) (map[string]any, error)
}
