package types

// VersionMeta is the subset of `rustc -vV` output the wrapper relies on.
type VersionMeta struct {
	Host       string
	Release    string
	CommitHash string
	Channel    Channel
}

type ExternalSource struct {
	Path string
}

// Command is an external process invocation. Env entries are KEY=VALUE
// pairs added on top of the inherited environment.
type Command struct {
	Program string
	Args    []string
	Env     []string
	Dir     string
}

type ExitStatus struct {
	Code int
}

func (s ExitStatus) Success() bool {
	return s.Code == 0
}
