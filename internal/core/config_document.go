package core

import "xsysroot/internal/shared"

const ConfigFileName = "Xargo.toml"

// ConfigDocument is a parsed Xargo.toml. Every accessor reports absence
// with false instead of failing.
type ConfigDocument struct {
	table map[string]any
}

func NewConfigDocument(table map[string]any) *ConfigDocument {
	if table == nil {
		table = map[string]any{}
	}
	return &ConfigDocument{table: table}
}

// Lookup resolves a dotted key such as "target.x86_64-foo.dependencies".
func (d *ConfigDocument) Lookup(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return shared.LookupDotted(d.table, key)
}

func (d *ConfigDocument) Dependencies() (any, bool) {
	return d.Lookup("dependencies")
}

// TargetDependencies looks up target.<triple>.dependencies without
// splitting the triple, which may itself contain dots.
func (d *ConfigDocument) TargetDependencies(triple string) (any, bool) {
	if d == nil {
		return nil, false
	}
	return shared.LookupPath(d.table, "target", triple, "dependencies")
}

func (d *ConfigDocument) Patch() (any, bool) {
	return d.Lookup("patch")
}

func (d *ConfigDocument) Package() (any, bool) {
	return d.Lookup("package")
}

// Table returns the document root.
func (d *ConfigDocument) Table() map[string]any {
	if d == nil {
		return nil
	}
	return d.table
}
