package mocks

import (
	"time"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	tmtime "github.com/tendermint/tendermint/types/time"
)

const ChainID = "autoburn-test"

var lastBlockCtx *ctrlertypes.BlockContext

func InitBlockCtxWith(h int64) *ctrlertypes.BlockContext {
	bctx := ctrlertypes.TempBlockContext(ChainID, h, tmtime.Now())
	lastBlockCtx = bctx
	return bctx
}

func LastBlockCtx() *ctrlertypes.BlockContext {
	return lastBlockCtx
}

func LastBlockHeight() int64 {
	if lastBlockCtx == nil {
		return 0
	}
	return lastBlockCtx.Height()
}

// NextBlockCtx returns the context one block and one second after the last one.
func NextBlockCtx() *ctrlertypes.BlockContext {
	if lastBlockCtx == nil {
		return InitBlockCtxWith(1)
	}
	bctx := ctrlertypes.ExpectNextBlockContext(lastBlockCtx, lastBlockCtx.Time().Add(time.Second))
	lastBlockCtx = bctx
	return bctx
}
