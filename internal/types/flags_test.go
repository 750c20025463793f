package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsForSysroot(t *testing.T) {
	flags := SplitFlags("  -C opt-level=s   -Z  share-generics ")
	assert.Equal(t, "-C opt-level=s -Z share-generics --sysroot /home/u/.xargo", flags.ForSysroot("/home/u/.xargo"))
	assert.Len(t, flags.Values, 4, "rendering must not mutate the flags")

	assert.Equal(t, "--sysroot /cache", Flags{}.ForSysroot("/cache"))
}

func TestExitStatusSuccess(t *testing.T) {
	assert.True(t, ExitStatus{}.Success())
	assert.False(t, ExitStatus{Code: 101}.Success())
}
