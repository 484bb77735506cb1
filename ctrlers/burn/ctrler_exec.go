package burn

import (
	"bytes"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/holiman/uint256"
)

// BurnRequest asks for an autonomous burn under the burn config of (Authority, Token).
// Account is the token account burned from; it defaults to Authority.
type BurnRequest struct {
	Caller       types.Address
	Authority    types.Address
	Token        types.Address
	Account      types.Address
	Amount       uint64
	ProfitAmount uint64
	Proof        []byte
}

func (req *BurnRequest) account() types.Address {
	if len(req.Account) == 0 {
		return req.Authority
	}
	return req.Account
}

// ExpectedBurn returns floor(profit * bps / 10000).
// The product is computed in 256 bits and the quotient must fit in 64 bits.
func ExpectedBurn(profit uint64, bps uint16) (uint64, xerrors.XError) {
	prod, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(profit), uint256.NewInt(uint64(bps)))
	if overflow {
		return 0, xerrors.ErrArithmeticOverflow.Wrapf("%d * %d", profit, bps)
	}
	quo := new(uint256.Int).Div(prod, uint256.NewInt(uint64(types.MaxBasisPoints)))
	if !quo.IsUint64() {
		return 0, xerrors.ErrArithmeticOverflow.Wrapf("expected burn of profit %d at %d bps", profit, bps)
	}
	return quo.Uint64(), nil
}

func checkedAdd(a, b uint64) (uint64, xerrors.XError) {
	sum, overflow := new(uint256.Int).AddOverflow(uint256.NewInt(a), uint256.NewInt(b))
	if overflow || !sum.IsUint64() {
		return 0, xerrors.ErrArithmeticOverflow.Wrapf("%d + %d", a, b)
	}
	return sum.Uint64(), nil
}

// ExecuteAutonomousBurn validates req against its burn config, burns through the ledger delegate
// and advances the counters. Any validation failure returns before anything is mutated.
// A failure to emit the resulting event is logged and does not undo the burn.
func (ctrler *BurnCtrler) ExecuteAutonomousBurn(bctx *ctrlertypes.BlockContext, req *BurnRequest, exec bool) (*ctrlertypes.BurnEvent, xerrors.XError) {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if req == nil {
		return nil, xerrors.ErrExecute.Wrapf("empty burn request")
	}

	burnCfg, xerr := ctrler.findBurnConfig(req.Authority, req.Token, exec)
	if xerr != nil {
		return nil, xerr
	}

	if !bytes.Equal(req.Caller, burnCfg.Authority) {
		return nil, xerrors.ErrAuthorizationMismatch.Wrapf("caller: %v, authority: %v", req.Caller, burnCfg.Authority)
	}
	if req.Amount < burnCfg.MinBurnAmount {
		return nil, xerrors.ErrBelowMinBurnAmount.Wrapf("amount: %d, min: %d", req.Amount, burnCfg.MinBurnAmount)
	}
	if req.ProfitAmount < burnCfg.ProfitThreshold {
		return nil, xerrors.ErrProfitThresholdNotMet.Wrapf("profit: %d, threshold: %d", req.ProfitAmount, burnCfg.ProfitThreshold)
	}

	expected, xerr := ExpectedBurn(req.ProfitAmount, burnCfg.BurnPercentage)
	if xerr != nil {
		return nil, xerr
	}
	if req.Amount < expected {
		return nil, xerrors.ErrInsufficientBurnAmount.Wrapf("amount: %d, expected: %d", req.Amount, expected)
	}

	if xerr := ctrler.verifier.Verify(req.Proof); xerr != nil {
		return nil, xerrors.ErrPaymentProofRejected.Wrap(xerr)
	}

	// The counters must be known to fit before the delegate burns anything.
	totalBurned, xerr := checkedAdd(burnCfg.TotalBurned, req.Amount)
	if xerr != nil {
		return nil, xerr
	}
	burnCount, xerr := checkedAdd(burnCfg.BurnCount, 1)
	if xerr != nil {
		return nil, xerr
	}

	if xerr := ctrler.delegate.Burn(burnCfg.Token, req.account(), burnCfg.Authority, req.Amount, exec); xerr != nil {
		return nil, xerrors.ErrLedgerDelegateFailure.Wrap(xerr)
	}

	updated := burnCfg.Clone()
	updated.TotalBurned = totalBurned
	updated.BurnCount = burnCount

	snap := ctrler.burnState.Snapshot(exec)
	if xerr := ctrler.burnState.Set(updated, exec); xerr != nil {
		if rerr := ctrler.burnState.RevertToSnapshot(snap, exec); rerr != nil {
			ctrler.logger.Error("fail to revert burn state", "error", rerr.Error())
		}
		ctrler.logger.Error("fail to store burn config after burn",
			"authority", updated.Authority, "token", updated.Token, "amount", req.Amount, "error", xerr.Error())
		return nil, xerrors.ErrExecute.Wrap(xerr)
	}

	evt := &ctrlertypes.BurnEvent{
		Authority:    updated.Authority.Copy(),
		Token:        updated.Token.Copy(),
		Amount:       req.Amount,
		ProfitAmount: req.ProfitAmount,
		TotalBurned:  updated.TotalBurned,
		BurnCount:    updated.BurnCount,
		Timestamp:    bctx.TimeSeconds(),
		Height:       bctx.Height(),
	}

	ctrler.logger.Info("autonomous burn executed",
		"height", bctx.Height(),
		"authority", evt.Authority,
		"token", evt.Token,
		"amount", evt.Amount,
		"profit", evt.ProfitAmount,
		"expected", expected,
		"burnPercent", types.BpsToPercent(updated.BurnPercentage),
		"totalBurned", evt.TotalBurned,
		"burnCount", evt.BurnCount,
		"exec", exec)

	// Simulated burns are not published.
	if exec && ctrler.emitter != nil {
		if xerr := ctrler.emitter.Emit(evt); xerr != nil {
			ctrler.logger.Error("fail to emit burn event", "authority", evt.Authority, "token", evt.Token, "error", xerr.Error())
		}
	}

	return evt, nil
}
