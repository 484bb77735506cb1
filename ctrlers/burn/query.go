package burn

import (
	v1 "github.com/beatoz/autoburn/ledger/v1"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmjson "github.com/tendermint/tendermint/libs/json"
)

const derivationKeySize = 32

// Query returns the burn config(s) at req.Height (0 means the last committed version).
// req.Data is either a derivation key, the concatenation authority||token,
// or empty to list every burn config.
func (ctrler *BurnCtrler) Query(req abcitypes.RequestQuery) ([]byte, xerrors.XError) {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	height := req.Height
	if height == 0 {
		height = ctrler.burnState.Version()
	}
	immuLedger, xerr := ctrler.burnState.ImitableLedgerAt(height)
	if xerr != nil {
		return nil, xerrors.ErrQuery.Wrap(xerr)
	}

	var key v1.LedgerKey
	switch len(req.Data) {
	case 0:
		var configs []*BurnConfig
		xerr := immuLedger.Seek(v1.KeyPrefixBurnConfig, true, func(_ v1.LedgerKey, item v1.ILedgerItem) xerrors.XError {
			configs = append(configs, item.(*BurnConfig))
			return nil
		})
		if xerr != nil {
			return nil, xerrors.ErrQuery.Wrap(xerr)
		}
		return marshalQueryResult(configs)
	case derivationKeySize:
		key = v1.LedgerKeyBurnConfig(req.Data)
	case types.AddrSize * 2:
		key = v1.LedgerKeyBurnConfigOf(req.Data[:types.AddrSize], req.Data[types.AddrSize:])
	default:
		return nil, xerrors.ErrInvalidQueryParams.Wrapf("wrong data length: %d", len(req.Data))
	}

	item, xerr := immuLedger.Get(key)
	if xerr != nil {
		if xerr.Contains(xerrors.ErrNotFoundResult) {
			return nil, xerrors.ErrQuery.Wrap(xerrors.ErrNotFoundBurnConfig)
		}
		return nil, xerrors.ErrQuery.Wrap(xerr)
	}
	return marshalQueryResult(item.(*BurnConfig))
}

func marshalQueryResult(v any) ([]byte, xerrors.XError) {
	if raw, err := tmjson.Marshal(v); err != nil {
		return nil, xerrors.ErrQuery.Wrap(err)
	} else {
		return raw, nil
	}
}
