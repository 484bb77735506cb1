package types

import (
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmprototypes "github.com/tendermint/tendermint/proto/tendermint/types"
	"sync"
	"time"
)

// BlockContext carries the height and time at which a request is applied.
// Every committed request advances the height by one.
type BlockContext struct {
	blockInfo abcitypes.RequestBeginBlock

	mtx sync.RWMutex
}

func NewBlockContext(bi abcitypes.RequestBeginBlock) *BlockContext {
	return &BlockContext{
		blockInfo: bi,
	}
}

func TempBlockContext(chainId string, height int64, btime time.Time) *BlockContext {
	return NewBlockContext(
		abcitypes.RequestBeginBlock{
			Header: tmprototypes.Header{
				ChainID: chainId,
				Height:  height,
				Time:    btime,
			},
		},
	)
}

func ExpectNextBlockContext(last *BlockContext, btime time.Time) *BlockContext {
	return TempBlockContext(last.ChainID(), last.Height()+1, btime)
}

func (bctx *BlockContext) BlockInfo() abcitypes.RequestBeginBlock {
	bctx.mtx.RLock()
	defer bctx.mtx.RUnlock()

	return bctx.blockInfo
}

func (bctx *BlockContext) ChainID() string {
	bctx.mtx.RLock()
	defer bctx.mtx.RUnlock()

	return bctx.blockInfo.Header.ChainID
}

func (bctx *BlockContext) Height() int64 {
	bctx.mtx.RLock()
	defer bctx.mtx.RUnlock()

	return bctx.blockInfo.Header.Height
}

func (bctx *BlockContext) Time() time.Time {
	bctx.mtx.RLock()
	defer bctx.mtx.RUnlock()

	return bctx.blockInfo.Header.GetTime()
}

// TimeSeconds returns block time in seconds
func (bctx *BlockContext) TimeSeconds() int64 {
	bctx.mtx.RLock()
	defer bctx.mtx.RUnlock()

	return bctx.blockInfo.Header.GetTime().Unix()
}
