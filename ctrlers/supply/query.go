package supply

import (
	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmjson "github.com/tendermint/tendermint/libs/json"
)

// Query returns the supply of a token when req.Data is a token address,
// or the balance of an account when req.Data is token||account.
func (ctrler *SupplyCtrler) Query(req abcitypes.RequestQuery) ([]byte, xerrors.XError) {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	height := req.Height
	if height == 0 {
		height = ctrler.supplyState.Version()
	}
	immuLedger, xerr := ctrler.supplyState.ImitableLedgerAt(height)
	if xerr != nil {
		return nil, xerrors.ErrQuery.Wrap(xerr)
	}

	var ret any
	switch len(req.Data) {
	case types.AddrSize:
		token := types.Address(req.Data)
		supply := newTokenSupply(token)
		if item, xerr := immuLedger.Get(v1.LedgerKeyTokenSupply(token)); xerr == nil {
			supply = item.(*TokenSupply)
		} else if !xerr.Contains(xerrors.ErrNotFoundResult) {
			return nil, xerrors.ErrQuery.Wrap(xerr)
		}
		ret = supply.toJSON()
	case types.AddrSize * 2:
		token, account := types.Address(req.Data[:types.AddrSize]), types.Address(req.Data[types.AddrSize:])
		bal := newBalance(token, account)
		if item, xerr := immuLedger.Get(v1.LedgerKeyBalance(token, account)); xerr == nil {
			bal = item.(*Balance)
		} else if !xerr.Contains(xerrors.ErrNotFoundResult) {
			return nil, xerrors.ErrQuery.Wrap(xerr)
		}
		ret = bal.toJSON()
	default:
		return nil, xerrors.ErrInvalidQueryParams.Wrapf("wrong data length: %d", len(req.Data))
	}

	if raw, err := tmjson.Marshal(ret); err != nil {
		return nil, xerrors.ErrQuery.Wrap(err)
	} else {
		return raw, nil
	}
}
