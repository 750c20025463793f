package app

import "xsysroot/internal/types"

type CargoRequest struct {
	Args        []string
	ProjectRoot string
	Verbose     bool
}

type CargoResult struct {
	Status      types.ExitStatus
	Mode        types.CompilationMode
	Home        string
	ConfigState types.ConfigState
}

type InspectRequest struct {
	Target      string
	ProjectRoot string
}

type InspectResult struct {
	Host                  string            `yaml:"host"`
	Triple                string            `yaml:"triple"`
	Native                bool              `yaml:"native"`
	Release               string            `yaml:"release"`
	Channel               types.Channel     `yaml:"channel"`
	Home                  string            `yaml:"home"`
	SysrootPath           string            `yaml:"sysroot"`
	ProjectRoot           string            `yaml:"project_root"`
	ConfigState           types.ConfigState `yaml:"config"`
	ConfigDir             string            `yaml:"config_dir,omitempty"`
	HasDependencies       bool              `yaml:"dependencies"`
	HasTargetDependencies bool              `yaml:"target_dependencies"`
	HasPatch              bool              `yaml:"patch"`
	ExternalSource        string            `yaml:"rust_src,omitempty"`
}

type SysrootLockRequest struct {
	Target  string
	Command []string
}

type SysrootLockResult struct {
	Triple      string
	SysrootPath string
	Status      types.ExitStatus
}
