package burn

import (
	"bytes"
	"os"
	"testing"

	cfg "github.com/beatoz/autoburn/cmd/config"
	"github.com/beatoz/autoburn/ctrlers/mocks"
	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/stretchr/testify/require"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

var testProof = []byte("payment-proof")

type testEnv struct {
	config   *cfg.Config
	ctrler   *BurnCtrler
	delegate *mocks.LedgerDelegateMock
	emitter  *mocks.EventEmitterMock
}

func newTestConfig(t *testing.T) *cfg.Config {
	dir, err := os.MkdirTemp("", "burn-ctrler-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	config := cfg.DefaultConfig()
	config.SetRoot(dir)
	return config
}

func newTestEnv(t *testing.T) *testEnv {
	config := newTestConfig(t)
	env := &testEnv{
		config:   config,
		delegate: mocks.NewLedgerDelegateMock(),
		emitter:  mocks.NewEventEmitterMock(),
	}
	env.open(t)
	return env
}

func (env *testEnv) open(t *testing.T) {
	ctrler, xerr := NewBurnCtrler(env.config, env.delegate, PassThroughVerifier{}, env.emitter, tmlog.NewNopLogger())
	require.NoError(t, xerr)
	env.ctrler = ctrler
	t.Cleanup(func() { _ = ctrler.Close() })
}

func (env *testEnv) commit(t *testing.T) {
	_, _, xerr := env.ctrler.Commit()
	require.NoError(t, xerr)
}

func burnRequest(authority, token types.Address, amount, profit uint64) *BurnRequest {
	return &BurnRequest{
		Caller:       authority,
		Authority:    authority,
		Token:        token,
		Amount:       amount,
		ProfitAmount: profit,
		Proof:        testProof,
	}
}

func TestNewBurnCtrler_RequiresCollaborators(t *testing.T) {
	config := newTestConfig(t)
	_, xerr := NewBurnCtrler(config, nil, PassThroughVerifier{}, nil, tmlog.NewNopLogger())
	require.Error(t, xerr)
	_, xerr = NewBurnCtrler(config, mocks.NewLedgerDelegateMock(), nil, nil, tmlog.NewNopLogger())
	require.Error(t, xerr)
}

// Scenario A through F run in sequence against one burn config.
func TestScenarios(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	// A: create
	burnCfg, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(1_000_000), burnCfg.ProfitThreshold)
	require.Equal(t, uint16(500), burnCfg.BurnPercentage)
	require.Equal(t, uint64(100), burnCfg.MinBurnAmount)
	require.Zero(t, burnCfg.TotalBurned)
	require.Zero(t, burnCfg.BurnCount)
	require.EqualValues(t, v1.DeriveBurnConfigKey(authority, token), burnCfg.DerivationKey)
	env.commit(t)

	// B: below minimum
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 50, 2_000_000), true)
	require.ErrorIs(t, xerr, xerrors.ErrBelowMinBurnAmount)

	// C: profit threshold not met
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 500_000), true)
	require.ErrorIs(t, xerr, xerrors.ErrProfitThresholdNotMet)

	require.Zero(t, env.delegate.CallCount())
	require.Empty(t, env.emitter.Events())

	// D: success
	bctx := mocks.NextBlockCtx()
	evt, xerr := env.ctrler.ExecuteAutonomousBurn(bctx, burnRequest(authority, token, 100_000, 2_000_000), true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(100_000), evt.Amount)
	require.Equal(t, uint64(2_000_000), evt.ProfitAmount)
	require.Equal(t, uint64(100_000), evt.TotalBurned)
	require.Equal(t, uint64(1), evt.BurnCount)
	require.Equal(t, bctx.TimeSeconds(), evt.Timestamp)
	require.Equal(t, bctx.Height(), evt.Height)
	env.commit(t)

	// E: repeat
	evt, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(200_000), evt.TotalBurned)
	require.Equal(t, uint64(2), evt.BurnCount)
	env.commit(t)

	require.Equal(t, 2, env.delegate.CallCount())
	require.Equal(t, uint64(200_000), env.delegate.TotalBurned())
	require.Len(t, env.emitter.Events(), 2)

	// F: invalid percentage on update leaves the record unchanged
	before, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)

	pct := uint16(10_001)
	_, xerr = env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), authority, authority, token, &BurnConfigUpdate{BurnPercentage: &pct}, true)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidBurnPercentage)

	after, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Equal(t, before, after)
	require.Equal(t, uint64(200_000), after.TotalBurned)
	require.Equal(t, uint64(2), after.BurnCount)
}

func TestInitBurnConfig_Errors(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 0, 10_001, 0, true)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidBurnPercentage)

	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), nil, token, 0, 100, 0, true)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidAddress)
	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, types.Address{0x01}, 0, 100, 0, true)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidAddress)

	// boundaries are accepted
	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 0, types.MaxBasisPoints, 0, true)
	require.NoError(t, xerr)
	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, types.RandAddress(), 0, 0, 0, true)
	require.NoError(t, xerr)

	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1, 1, 1, true)
	require.ErrorIs(t, xerr, xerrors.ErrDuplicatedBurnConfig)

	env.commit(t)
	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1, 1, 1, true)
	require.ErrorIs(t, xerr, xerrors.ErrDuplicatedBurnConfig)
}

func TestBurnConfig_DistinctPairs(t *testing.T) {
	env := newTestEnv(t)
	a0, a1, tk := types.RandAddress(), types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), a0, tk, 10, 100, 1, true)
	require.NoError(t, xerr)
	_, xerr = env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), a1, tk, 20, 200, 2, true)
	require.NoError(t, xerr)
	env.commit(t)

	c0, xerr := env.ctrler.FindBurnConfig(a0, tk, true)
	require.NoError(t, xerr)
	c1, xerr := env.ctrler.FindBurnConfig(a1, tk, true)
	require.NoError(t, xerr)
	require.NotEqual(t, c0.DerivationKey, c1.DerivationKey)
	require.Equal(t, uint64(10), c0.ProfitThreshold)
	require.Equal(t, uint64(20), c1.ProfitThreshold)

	byKey, xerr := env.ctrler.FindBurnConfigByKey(c1.DerivationKey, true)
	require.NoError(t, xerr)
	require.Equal(t, c1, byKey)

	var visited int
	require.NoError(t, env.ctrler.IterateBurnConfigs(func(*BurnConfig) xerrors.XError {
		visited++
		return nil
	}, true))
	require.Equal(t, 2, visited)

	_, xerr = env.ctrler.FindBurnConfig(tk, a0, true)
	require.ErrorIs(t, xerr, xerrors.ErrNotFoundBurnConfig)
}

func TestUpdateBurnConfig(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000, 500, 10, true)
	require.NoError(t, xerr)
	env.commit(t)

	// only the present fields change
	threshold := uint64(5_000)
	updated, xerr := env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), authority, authority, token, &BurnConfigUpdate{ProfitThreshold: &threshold}, true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(5_000), updated.ProfitThreshold)
	require.Equal(t, uint16(500), updated.BurnPercentage)
	require.Equal(t, uint64(10), updated.MinBurnAmount)

	pct, minAmt := types.MaxBasisPoints, uint64(0)
	updated, xerr = env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), authority, authority, token, &BurnConfigUpdate{BurnPercentage: &pct, MinBurnAmount: &minAmt}, true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(5_000), updated.ProfitThreshold)
	require.Equal(t, types.MaxBasisPoints, updated.BurnPercentage)
	require.Zero(t, updated.MinBurnAmount)

	// an invalid percentage rejects the other fields too
	badPct, newMin := uint16(65_535), uint64(999)
	_, xerr = env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), authority, authority, token, &BurnConfigUpdate{BurnPercentage: &badPct, MinBurnAmount: &newMin}, true)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidBurnPercentage)
	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Zero(t, found.MinBurnAmount)

	// wrong caller
	_, xerr = env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), types.RandAddress(), authority, token, &BurnConfigUpdate{ProfitThreshold: &threshold}, true)
	require.ErrorIs(t, xerr, xerrors.ErrAuthorizationMismatch)

	// unknown config
	_, xerr = env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), authority, authority, types.RandAddress(), &BurnConfigUpdate{ProfitThreshold: &threshold}, true)
	require.ErrorIs(t, xerr, xerrors.ErrNotFoundBurnConfig)
}

func TestUpdateBurnConfig_NoOp(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000, 500, 10, true)
	require.NoError(t, xerr)
	hash0, _, xerr := env.ctrler.Commit()
	require.NoError(t, xerr)

	for _, upd := range []*BurnConfigUpdate{nil, {}} {
		found, xerr := env.ctrler.UpdateBurnConfig(mocks.NextBlockCtx(), authority, authority, token, upd, true)
		require.NoError(t, xerr)
		require.Equal(t, uint64(1_000), found.ProfitThreshold)
	}

	// nothing was written, so the state hash does not change.
	hash1, _, xerr := env.ctrler.Commit()
	require.NoError(t, xerr)
	require.Equal(t, hash0, hash1)
}

func TestExecuteAutonomousBurn_Errors(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	env.commit(t)

	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), nil, true)
	require.ErrorIs(t, xerr, xerrors.ErrExecute)

	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, types.RandAddress(), 100_000, 2_000_000), true)
	require.ErrorIs(t, xerr, xerrors.ErrNotFoundBurnConfig)

	req := burnRequest(authority, token, 100_000, 2_000_000)
	req.Caller = types.RandAddress()
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), req, true)
	require.ErrorIs(t, xerr, xerrors.ErrAuthorizationMismatch)

	// expected burn of 2_000_001 at 5% is 100_000
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 99_999, 2_000_001), true)
	require.ErrorIs(t, xerr, xerrors.ErrInsufficientBurnAmount)

	req = burnRequest(authority, token, 100_000, 2_000_000)
	req.Proof = nil
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), req, true)
	require.ErrorIs(t, xerr, xerrors.ErrPaymentProofRejected)

	require.Zero(t, env.delegate.CallCount())
	require.Empty(t, env.emitter.Events())

	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Zero(t, found.TotalBurned)
	require.Zero(t, found.BurnCount)
}

func TestExecuteAutonomousBurn_Account(t *testing.T) {
	env := newTestEnv(t)
	authority, token, account := types.RandAddress(), types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 0, 0, 0, true)
	require.NoError(t, xerr)

	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 1, 0), true)
	require.NoError(t, xerr)

	req := burnRequest(authority, token, 2, 0)
	req.Account = account
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), req, true)
	require.NoError(t, xerr)

	require.Len(t, env.delegate.Calls, 2)
	require.EqualValues(t, authority, env.delegate.Calls[0].Account)
	require.EqualValues(t, account, env.delegate.Calls[1].Account)
	for _, c := range env.delegate.Calls {
		require.EqualValues(t, token, c.Token)
		require.EqualValues(t, authority, c.Authority)
	}
}

func TestExecuteAutonomousBurn_DelegateFailure(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	env.commit(t)

	env.delegate.Err = xerrors.ErrInsufficientFund
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), true)
	require.ErrorIs(t, xerr, xerrors.ErrLedgerDelegateFailure)
	require.True(t, xerr.Contains(xerrors.ErrInsufficientFund))

	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Zero(t, found.TotalBurned)
	require.Zero(t, found.BurnCount)
	require.Empty(t, env.emitter.Events())
}

func TestExecuteAutonomousBurn_EmitterFailure(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	env.commit(t)

	env.emitter.Err = xerrors.NewOrdinary("journal unavailable")
	evt, xerr := env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(1), evt.BurnCount)
	env.commit(t)

	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(100_000), found.TotalBurned)
	require.Equal(t, uint64(1), found.BurnCount)
}

type failingSetState struct {
	v1.IStateLedger[*BurnConfig]
	reverted int
}

func (s *failingSetState) Set(*BurnConfig, bool) xerrors.XError {
	return xerrors.NewOrdinary("store unavailable")
}

func (s *failingSetState) RevertToSnapshot(int, bool) xerrors.XError {
	s.reverted++
	return xerrors.NewOrdinary("revert unavailable")
}

func TestExecuteAutonomousBurn_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	env.commit(t)

	buf := &bytes.Buffer{}
	env.ctrler.logger = tmlog.NewTMLogger(tmlog.NewSyncWriter(buf))
	state := &failingSetState{IStateLedger: env.ctrler.burnState}
	env.ctrler.burnState = state

	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), true)
	require.ErrorIs(t, xerr, xerrors.ErrExecute)
	require.Equal(t, 1, state.reverted)
	require.Contains(t, buf.String(), "fail to revert burn state")
	require.Contains(t, buf.String(), "revert unavailable")
	require.Empty(t, env.emitter.Events())
}

func TestExecuteAutonomousBurn_CounterOverflow(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 0, 0, 0, true)
	require.NoError(t, xerr)

	huge := uint64(1<<64 - 1)
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, huge, 0), true)
	require.NoError(t, xerr)

	// the total would overflow, so the delegate must not be called.
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 1, 0), true)
	require.ErrorIs(t, xerr, xerrors.ErrArithmeticOverflow)
	require.Equal(t, 1, env.delegate.CallCount())

	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Equal(t, huge, found.TotalBurned)
	require.Equal(t, uint64(1), found.BurnCount)
}

func TestSimulation_DoesNotTouchCommittedState(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	env.commit(t)

	evt, xerr := env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), false)
	require.NoError(t, xerr)
	require.Equal(t, uint64(1), evt.BurnCount)

	// simulated state is visible in simulation only
	simulated, xerr := env.ctrler.FindBurnConfig(authority, token, false)
	require.NoError(t, xerr)
	require.Equal(t, uint64(100_000), simulated.TotalBurned)

	committed, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Zero(t, committed.TotalBurned)
	require.Zero(t, committed.BurnCount)

	require.Empty(t, env.emitter.Events())
	require.Len(t, env.delegate.Calls, 1)
	require.False(t, env.delegate.Calls[0].Exec)

	// simulation is discarded at commit
	env.commit(t)
	simulated, xerr = env.ctrler.FindBurnConfig(authority, token, false)
	require.NoError(t, xerr)
	require.Zero(t, simulated.TotalBurned)
}

func TestPersistence_Reopen(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1_000_000, 500, 100, true)
	require.NoError(t, xerr)
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), true)
	require.NoError(t, xerr)
	env.commit(t)
	ver := env.ctrler.Version()

	// not committed, so lost on reopen
	_, xerr = env.ctrler.ExecuteAutonomousBurn(mocks.NextBlockCtx(), burnRequest(authority, token, 100_000, 2_000_000), true)
	require.NoError(t, xerr)

	require.NoError(t, env.ctrler.Close())
	env.open(t)
	require.Equal(t, ver, env.ctrler.Version())

	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Equal(t, uint64(100_000), found.TotalBurned)
	require.Equal(t, uint64(1), found.BurnCount)
	require.Equal(t, uint16(500), found.BurnPercentage)
}

func TestReturnedConfigIsDetached(t *testing.T) {
	env := newTestEnv(t)
	authority, token := types.RandAddress(), types.RandAddress()

	_, xerr := env.ctrler.InitBurnConfig(mocks.NextBlockCtx(), authority, token, 1, 2, 3, true)
	require.NoError(t, xerr)
	env.commit(t)

	found, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	found.TotalBurned = 12345
	found.Authority[0] ^= 0xff

	again, xerr := env.ctrler.FindBurnConfig(authority, token, true)
	require.NoError(t, xerr)
	require.Zero(t, again.TotalBurned)
	require.EqualValues(t, authority, again.Authority)
}

var _ ctrlertypes.IProofVerifier = PassThroughVerifier{}
