package node

import (
	"encoding/binary"

	"github.com/beatoz/autoburn/events"
	"github.com/beatoz/autoburn/libs/jsonx"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

// QueryEventsParams is the json of req.Data for the `events` path.
type QueryEventsParams struct {
	From  uint64 `json:"from"`
	Limit int    `json:"limit"`
}

func (node *BurnNode) Query(req abcitypes.RequestQuery) abcitypes.ResponseQuery {
	node.mtx.Lock()
	lastHeight := node.lastBlockCtx.Height()
	chainID := node.lastBlockCtx.ChainID()
	node.mtx.Unlock()

	if req.Height == 0 {
		req.Height = lastHeight
	}

	response := abcitypes.ResponseQuery{
		Code:   abcitypes.CodeTypeOK,
		Key:    req.Data,
		Height: req.Height,
	}

	var xerr xerrors.XError

	switch req.Path {
	case "chain_id":
		response.Value = []byte(chainID)
	case "block_height":
		val := make([]byte, 8)
		binary.BigEndian.PutUint64(val, uint64(lastHeight))
		response.Value = val
	case "config":
		response.Value, xerr = node.burnCtrler.Query(req)
	case "supply":
		if len(req.Data) != types.AddrSize {
			xerr = xerrors.ErrInvalidQueryParams.Wrapf("supply query needs a token address")
			break
		}
		response.Value, xerr = node.supplyCtrler.Query(req)
	case "balance":
		if len(req.Data) != types.AddrSize*2 {
			xerr = xerrors.ErrInvalidQueryParams.Wrapf("balance query needs token and account addresses")
			break
		}
		response.Value, xerr = node.supplyCtrler.Query(req)
	case "events":
		response.Value, xerr = node.queryEvents(req.Data)
	default:
		response.Value, xerr = nil, xerrors.ErrInvalidQueryPath
	}

	if xerr != nil {
		node.logger.Error("BurnNode - Query returns error", "error", xerr, "path", req.Path)
		response.Code = xerr.Code()
		response.Log = xerr.Error()
	}

	return response
}

func (node *BurnNode) queryEvents(data []byte) ([]byte, xerrors.XError) {
	params := &QueryEventsParams{}
	if len(data) > 0 {
		if err := jsonx.Unmarshal(data, params); err != nil {
			return nil, xerrors.ErrInvalidQueryParams.Wrap(err)
		}
	}

	entries, err := node.journal.Events(params.From, params.Limit)
	if err != nil {
		return nil, xerrors.ErrQuery.Wrap(err)
	}
	if entries == nil {
		entries = []*events.JournalEntry{}
	}
	bz, err := jsonx.Marshal(entries)
	if err != nil {
		return nil, xerrors.ErrQuery.Wrap(err)
	}
	return bz, nil
}
