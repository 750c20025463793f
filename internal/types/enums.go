package types

type LockMode string

const (
	LockShared    LockMode = "shared"
	LockExclusive LockMode = "exclusive"
)

type ConfigState string

const (
	ConfigAbsent  ConfigState = "absent"
	ConfigInvalid ConfigState = "invalid"
	ConfigLoaded  ConfigState = "loaded"
)

type Channel string

const (
	ChannelStable  Channel = "stable"
	ChannelBeta    Channel = "beta"
	ChannelNightly Channel = "nightly"
	ChannelDev     Channel = "dev"
)

type Subcommand string

const (
	SubcommandNone  Subcommand = ""
	SubcommandBuild Subcommand = "build"
	SubcommandCheck Subcommand = "check"
	SubcommandDoc   Subcommand = "doc"
	SubcommandTest  Subcommand = "test"
	SubcommandRun   Subcommand = "run"
	SubcommandRustc Subcommand = "rustc"
	SubcommandBench Subcommand = "bench"
)
