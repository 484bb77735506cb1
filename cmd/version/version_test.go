package version

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionParsing(t *testing.T) {
	require.NoError(t, parseVersions("v1.2.3", "abcdef0123"))
	require.Equal(t, uint64(1), majorVer)
	require.Equal(t, uint64(2), minorVer)
	require.Equal(t, uint64(3), patchVer)

	n, err := strconv.ParseUint("abcdef0123", 16, 64)
	require.NoError(t, err)
	require.Equal(t, n, commitVer)
	require.True(t, strings.HasPrefix(String(), "v1.2.3-abcdef0123@"))

	require.Error(t, parseVersions("1.2", ""))
	require.Error(t, parseVersions("v1.2.3", "xyz"))
}
