package burn

import (
	"testing"

	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestBurnConfig_Codec(t *testing.T) {
	authority, token := types.RandAddress(), types.RandAddress()
	burnCfg := NewBurnConfig(authority, token, 1_000_000, 500, 100)
	burnCfg.TotalBurned = 1<<64 - 1
	burnCfg.BurnCount = 7

	bz, xerr := burnCfg.Encode()
	require.NoError(t, xerr)
	pm := &BurnConfigProto{}
	require.NoError(t, proto.Unmarshal(bz, pm))
	require.Equal(t, uint64(1<<64-1), pm.GetTotalBurned())
	require.Equal(t, uint32(500), pm.GetBurnPercentage())
	require.Equal(t, []byte(burnCfg.DerivationKey), pm.GetDerivationKey())

	decoded := &BurnConfig{}
	require.NoError(t, decoded.Decode(burnCfg.Key(), bz))
	require.Equal(t, burnCfg, decoded)
	require.Equal(t, v1.LedgerKeyBurnConfigOf(authority, token), decoded.Key())

	// decoding under another key is rejected
	other := &BurnConfig{}
	require.Error(t, other.Decode(v1.LedgerKeyBurnConfigOf(token, authority), bz))

	// a percentage that does not fit 16 bits is rejected
	pm.BurnPercentage = 1 << 16
	bz, err := proto.Marshal(pm)
	require.NoError(t, err)
	require.ErrorIs(t, (&BurnConfig{}).Decode(burnCfg.Key(), bz), xerrors.ErrInvalidBurnPercentage)
}

func TestBurnConfigUpdate(t *testing.T) {
	var nilUpd *BurnConfigUpdate
	require.True(t, nilUpd.IsEmpty())
	require.True(t, (&BurnConfigUpdate{}).IsEmpty())

	pct := uint16(10_001)
	require.Error(t, (&BurnConfigUpdate{BurnPercentage: &pct}).ValidateBasic())
	pct = 10_000
	require.NoError(t, (&BurnConfigUpdate{BurnPercentage: &pct}).ValidateBasic())

	threshold := uint64(9)
	burnCfg := NewBurnConfig(types.RandAddress(), types.RandAddress(), 1, 2, 3)
	(&BurnConfigUpdate{ProfitThreshold: &threshold}).applyTo(burnCfg)
	require.Equal(t, uint64(9), burnCfg.ProfitThreshold)
	require.Equal(t, uint16(2), burnCfg.BurnPercentage)
	require.Equal(t, uint64(3), burnCfg.MinBurnAmount)
}

func TestDeriveBurnConfigKey(t *testing.T) {
	a, b := types.RandAddress(), types.RandAddress()

	k0 := v1.DeriveBurnConfigKey(a, b)
	require.Len(t, k0, 32)
	require.Equal(t, k0, v1.DeriveBurnConfigKey(a.Copy(), b.Copy()))
	require.NotEqual(t, k0, v1.DeriveBurnConfigKey(b, a))
	require.NotEqual(t, k0, v1.DeriveBurnConfigKey(a, types.RandAddress()))
}

func TestPassThroughVerifier(t *testing.T) {
	require.NoError(t, PassThroughVerifier{}.Verify([]byte("x")))
	require.Error(t, PassThroughVerifier{}.Verify(nil))
	require.Error(t, PassThroughVerifier{}.Verify([]byte{}))
}
