package burn

import (
	"bytes"
	"sync"

	cfg "github.com/beatoz/autoburn/cmd/config"
	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// BurnCtrler owns the burn configs and authorizes autonomous burns against them.
type BurnCtrler struct {
	burnState v1.IStateLedger[*BurnConfig]

	delegate ctrlertypes.ILedgerDelegate
	verifier ctrlertypes.IProofVerifier
	emitter  ctrlertypes.IEventEmitter

	logger tmlog.Logger
	mtx    sync.RWMutex
}

var _ ctrlertypes.ILedgerHandler = (*BurnCtrler)(nil)

func NewBurnCtrler(
	config *cfg.Config,
	delegate ctrlertypes.ILedgerDelegate,
	verifier ctrlertypes.IProofVerifier,
	emitter ctrlertypes.IEventEmitter,
	logger tmlog.Logger) (*BurnCtrler, xerrors.XError) {

	if delegate == nil || verifier == nil {
		return nil, xerrors.ErrInitChain.Wrapf("BurnCtrler requires a ledger delegate and a proof verifier")
	}

	lg := logger.With("module", "autoburn_BurnCtrler")
	newItem := func(key v1.LedgerKey) *BurnConfig { return &BurnConfig{} }

	_state, xerr := v1.NewStateLedger("burn_configs", config.DBDir(), config.AutoBurn.LedgerCacheSize, newItem, lg)
	if xerr != nil {
		return nil, xerr
	}

	return &BurnCtrler{
		burnState: _state,
		delegate:  delegate,
		verifier:  verifier,
		emitter:   emitter,
		logger:    lg,
	}, nil
}

// InitBurnConfig creates the burn config of (authority, token) with zero counters.
func (ctrler *BurnCtrler) InitBurnConfig(
	bctx *ctrlertypes.BlockContext,
	authority, token types.Address,
	profitThreshold uint64, burnPercentage uint16, minBurnAmount uint64,
	exec bool) (*BurnConfig, xerrors.XError) {

	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if !types.IsValidAddress(authority) {
		return nil, xerrors.ErrInvalidAddress.Wrapf("authority: %v", authority)
	}
	if !types.IsValidAddress(token) {
		return nil, xerrors.ErrInvalidAddress.Wrapf("token: %v", token)
	}
	if !types.IsValidBasisPoints(burnPercentage) {
		return nil, xerrors.ErrInvalidBurnPercentage.Wrapf("burn percentage %d exceeds %d", burnPercentage, types.MaxBasisPoints)
	}

	if _, xerr := ctrler.burnState.Get(v1.LedgerKeyBurnConfigOf(authority, token), exec); xerr == nil {
		return nil, xerrors.ErrDuplicatedBurnConfig.Wrapf("authority: %v, token: %v", authority, token)
	} else if !xerr.Contains(xerrors.ErrNotFoundResult) {
		return nil, xerr
	}

	burnCfg := NewBurnConfig(authority, token, profitThreshold, burnPercentage, minBurnAmount)
	if xerr := ctrler.burnState.Set(burnCfg, exec); xerr != nil {
		return nil, xerr
	}

	ctrler.logger.Info("burn config initialized",
		"height", bctx.Height(),
		"authority", authority,
		"token", token,
		"profitThreshold", profitThreshold,
		"burnPercent", types.BpsToPercent(burnPercentage),
		"minBurnAmount", minBurnAmount,
		"exec", exec)

	return burnCfg.Clone(), nil
}

// UpdateBurnConfig changes the fields present in upd. It is all-or-nothing:
// nothing is written if any present field is invalid, and an empty update writes nothing.
func (ctrler *BurnCtrler) UpdateBurnConfig(
	bctx *ctrlertypes.BlockContext,
	caller, authority, token types.Address,
	upd *BurnConfigUpdate,
	exec bool) (*BurnConfig, xerrors.XError) {

	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	burnCfg, xerr := ctrler.findBurnConfig(authority, token, exec)
	if xerr != nil {
		return nil, xerr
	}
	if !bytes.Equal(caller, burnCfg.Authority) {
		return nil, xerrors.ErrAuthorizationMismatch.Wrapf("caller: %v, authority: %v", caller, burnCfg.Authority)
	}
	if upd.IsEmpty() {
		return burnCfg.Clone(), nil
	}
	if xerr := upd.ValidateBasic(); xerr != nil {
		return nil, xerr
	}

	updated := burnCfg.Clone()
	upd.applyTo(updated)
	if xerr := ctrler.burnState.Set(updated, exec); xerr != nil {
		return nil, xerr
	}

	ctrler.logger.Info("burn config updated",
		"height", bctx.Height(),
		"authority", updated.Authority,
		"token", updated.Token,
		"profitThreshold", updated.ProfitThreshold,
		"burnPercent", types.BpsToPercent(updated.BurnPercentage),
		"minBurnAmount", updated.MinBurnAmount,
		"exec", exec)

	return updated.Clone(), nil
}

func (ctrler *BurnCtrler) FindBurnConfig(authority, token types.Address, exec bool) (*BurnConfig, xerrors.XError) {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	burnCfg, xerr := ctrler.findBurnConfig(authority, token, exec)
	if xerr != nil {
		return nil, xerr
	}
	return burnCfg.Clone(), nil
}

func (ctrler *BurnCtrler) FindBurnConfigByKey(derivationKey []byte, exec bool) (*BurnConfig, xerrors.XError) {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	burnCfg, xerr := ctrler.burnState.Get(v1.LedgerKeyBurnConfig(derivationKey), exec)
	if xerr != nil {
		if xerr.Contains(xerrors.ErrNotFoundResult) {
			return nil, xerrors.ErrNotFoundBurnConfig.Wrapf("derivation key: %X", derivationKey)
		}
		return nil, xerr
	}
	return burnCfg.Clone(), nil
}

// IterateBurnConfigs visits every burn config in ascending order of derivation key.
func (ctrler *BurnCtrler) IterateBurnConfigs(cb func(*BurnConfig) xerrors.XError, exec bool) xerrors.XError {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	return ctrler.burnState.Seek(v1.KeyPrefixBurnConfig, true, func(burnCfg *BurnConfig) xerrors.XError {
		return cb(burnCfg.Clone())
	}, exec)
}

// findBurnConfig returns the item shared with the ledger; callers must clone it before modifying.
func (ctrler *BurnCtrler) findBurnConfig(authority, token types.Address, exec bool) (*BurnConfig, xerrors.XError) {
	burnCfg, xerr := ctrler.burnState.Get(v1.LedgerKeyBurnConfigOf(authority, token), exec)
	if xerr != nil {
		if xerr.Contains(xerrors.ErrNotFoundResult) {
			return nil, xerrors.ErrNotFoundBurnConfig.Wrapf("authority: %v, token: %v", authority, token)
		}
		return nil, xerr
	}
	return burnCfg, nil
}

func (ctrler *BurnCtrler) Commit() ([]byte, int64, xerrors.XError) {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	h, v, xerr := ctrler.burnState.Commit()
	if xerr != nil {
		return nil, 0, xerrors.ErrCommit.Wrap(xerr)
	}
	return h, v, nil
}

// Rollback discards the changes executed since the last commit.
func (ctrler *BurnCtrler) Rollback() {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	ctrler.burnState.Rollback()
}

// ResetSimulation discards the changes simulated since the last commit.
func (ctrler *BurnCtrler) ResetSimulation() xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	return ctrler.burnState.ResetSimulation()
}

// ResetToVersion drops the versions committed after ver.
func (ctrler *BurnCtrler) ResetToVersion(ver int64) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.burnState.ResetToVersion(ver); xerr != nil {
		return xerrors.ErrCommit.Wrap(xerr)
	}
	return nil
}

func (ctrler *BurnCtrler) Version() int64 {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	return ctrler.burnState.Version()
}

func (ctrler *BurnCtrler) Close() xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.burnState != nil {
		if xerr := ctrler.burnState.Close(); xerr != nil {
			ctrler.logger.Error("burnState.Close()", "error", xerr.Error())
		}
		ctrler.burnState = nil
	}
	return nil
}
