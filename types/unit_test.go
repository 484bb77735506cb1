package types

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBasisPoints(t *testing.T) {
	require.True(t, IsValidBasisPoints(0))
	require.True(t, IsValidBasisPoints(10_000))
	require.False(t, IsValidBasisPoints(10_001))

	require.Equal(t, "5", BpsToPercent(500))
	require.Equal(t, "0.01", BpsToPercent(1))
	require.Equal(t, "100", BpsToPercent(10_000))
	require.Equal(t, "12.34", BpsToPercent(1234))
	require.Equal(t, "0", BpsToPercent(0))
}

func TestPercentToBps(t *testing.T) {
	cases := map[string]uint16{
		"5":      500,
		"0.01":   1,
		"12.34":  1234,
		"100":    10_000,
		"0":      0,
		"100.01": 10_001,
	}
	for s, expected := range cases {
		bps, err := PercentToBps(s)
		require.NoError(t, err, s)
		require.Equal(t, expected, bps, s)
		if expected <= MaxBasisPoints {
			require.Equal(t, s, BpsToPercent(bps))
		}
	}

	for _, s := range []string{"-1", "0.001", "abc", "655.36"} {
		_, err := PercentToBps(s)
		require.Error(t, err, s)
	}
}

func TestHexToAddress(t *testing.T) {
	addr, err := HexToAddress("0x000000000000000000000000000000000000dEaD")
	require.NoError(t, err)
	require.Len(t, addr, AddrSize)
	require.Equal(t, "000000000000000000000000000000000000DEAD", addr.String())

	_, err = HexToAddress("0x1234")
	require.Error(t, err)

	require.True(t, IsValidAddress(RandAddress()))
	require.False(t, IsValidAddress(Address{0x01}))
}

func TestParseUint(t *testing.T) {
	v, err := ParseUint64("1000000")
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), v)

	v, err = ParseUint64("0x10")
	require.NoError(t, err)
	require.Equal(t, uint64(16), v)

	_, err = ParseUint64("-1")
	require.Error(t, err)
	_, err = ParseUint64("18446744073709551616")
	require.Error(t, err)

	bps, err := ParseBasisPoints("10000")
	require.NoError(t, err)
	require.Equal(t, uint16(10_000), bps)

	_, err = ParseBasisPoints("70000")
	require.Error(t, err)
}
