package adapters

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"xsysroot/internal/ports"
)

const (
	envPrefix = "XARGO"
	homeKey   = "home"
)

// EnvironmentAdapter reads the cache root through viper so that XARGO_HOME,
// a bound --home flag, and the tool config file all resolve the same key.
type EnvironmentAdapter struct {
	v *viper.Viper
}

func NewEnvironmentAdapter(v *viper.Viper) EnvironmentAdapter {
	if v == nil {
		v = viper.New()
		v.SetEnvPrefix(envPrefix)
	}
	if err := v.BindEnv(homeKey); err != nil {
		log.Debug().Err(err).Msg("failed to bind home env")
	}
	return EnvironmentAdapter{v: v}
}

func (a EnvironmentAdapter) HomeOverride() (string, bool) {
	home := strings.TrimSpace(a.v.GetString(homeKey))
	return home, home != ""
}

func (a EnvironmentAdapter) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (a EnvironmentAdapter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// StaticEnvironment is a fixed EnvironmentPort for callers that must not
// depend on the process environment.
type StaticEnvironment struct {
	Home    string
	HomeDir string
	Vars    map[string]string
}

func (e StaticEnvironment) HomeOverride() (string, bool) {
	return e.Home, e.Home != ""
}

func (e StaticEnvironment) UserHomeDir() (string, error) {
	if e.HomeDir == "" {
		return "", os.ErrNotExist
	}
	return e.HomeDir, nil
}

func (e StaticEnvironment) LookupEnv(key string) (string, bool) {
	value, ok := e.Vars[key]
	return value, ok
}

var _ ports.EnvironmentPort = EnvironmentAdapter{}
var _ ports.EnvironmentPort = StaticEnvironment{}
