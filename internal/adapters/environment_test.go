package adapters

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentAdapter_HomeOverrideFromEnv(t *testing.T) {
	t.Setenv("XARGO_HOME", "/opt/xargo")
	home, ok := NewEnvironmentAdapter(nil).HomeOverride()
	require.True(t, ok)
	assert.Equal(t, "/opt/xargo", home)
}

func TestEnvironmentAdapter_HomeOverrideUnset(t *testing.T) {
	t.Setenv("XARGO_HOME", "")
	_, ok := NewEnvironmentAdapter(nil).HomeOverride()
	assert.False(t, ok)
}

func TestEnvironmentAdapter_HomeOverrideFromViper(t *testing.T) {
	t.Setenv("XARGO_HOME", "")
	v := viper.New()
	v.SetEnvPrefix("XARGO")
	v.Set("home", "/from/config")

	home, ok := NewEnvironmentAdapter(v).HomeOverride()
	require.True(t, ok)
	assert.Equal(t, "/from/config", home)
}

func TestEnvironmentAdapter_LookupEnv(t *testing.T) {
	t.Setenv("RUSTFLAGS", "-C lto")
	value, ok := NewEnvironmentAdapter(nil).LookupEnv("RUSTFLAGS")
	require.True(t, ok)
	assert.Equal(t, "-C lto", value)
}

func TestStaticEnvironment(t *testing.T) {
	env := StaticEnvironment{HomeDir: "/home/dev", Vars: map[string]string{"CARGO": "/bin/cargo"}}
	_, ok := env.HomeOverride()
	assert.False(t, ok)

	dir, err := env.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/dev", dir)

	_, err = StaticEnvironment{}.UserHomeDir()
	assert.Error(t, err)

	value, ok := env.LookupEnv("CARGO")
	assert.True(t, ok)
	assert.Equal(t, "/bin/cargo", value)
}
