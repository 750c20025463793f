package types

// CompilationMode records whether a build targets the host itself or a
// different triple.
type CompilationMode struct {
	triple string
	native bool
}

func NativeMode(host string) CompilationMode {
	return CompilationMode{triple: host, native: true}
}

func CrossMode(triple string) CompilationMode {
	return CompilationMode{triple: triple}
}

// ModeFor derives the compilation mode from an optional --target value.
// A target equal to the host triple is a native build.
func ModeFor(target string, host string) CompilationMode {
	if target == "" || target == host {
		return NativeMode(host)
	}
	return CrossMode(target)
}

func (m CompilationMode) Triple() string {
	return m.triple
}

func (m CompilationMode) IsNative() bool {
	return m.native
}

func (m CompilationMode) String() string {
	if m.native {
		return "native(" + m.triple + ")"
	}
	return "cross(" + m.triple + ")"
}
