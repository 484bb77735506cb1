package node

import (
	"sync"

	cfg "github.com/beatoz/autoburn/cmd/config"
	"github.com/beatoz/autoburn/cmd/version"
	"github.com/beatoz/autoburn/ctrlers/burn"
	"github.com/beatoz/autoburn/ctrlers/supply"
	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/events"
	"github.com/beatoz/autoburn/types"
	"github.com/beatoz/autoburn/types/bytes"
	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tendermint/tendermint/libs/log"
	tmos "github.com/tendermint/tendermint/libs/os"
	tmtime "github.com/tendermint/tendermint/types/time"
)

// BurnNode applies burn operations one at a time.
// Every successful operation is committed as one block; a failed one leaves no trace.
type BurnNode struct {
	lastBlockCtx *ctrlertypes.BlockContext
	lastAppHash  bytes.HexBytes

	metaDB       *MetaDB
	supplyCtrler *supply.SupplyCtrler
	burnCtrler   *burn.BurnCtrler
	journal      *events.EventJournal

	// committed in this order at every block
	ledgers []ctrlertypes.ILedgerHandler

	rootConfig *cfg.Config
	logger     log.Logger
	mtx        sync.Mutex
}

func NewBurnNode(config *cfg.Config, logger log.Logger) (*BurnNode, error) {
	if err := config.AutoBurn.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := tmos.EnsureDir(config.DBDir(), 0o700); err != nil {
		return nil, err
	}

	metaDB, err := OpenMetaDB("autoburn_node", config.DBDir())
	if err != nil {
		return nil, err
	}

	journal, err := events.OpenEventJournal(config.AutoBurn.EventJournalName, config.AutoBurn.EventJournalDB, config.DBDir(), logger)
	if err != nil {
		_ = metaDB.Close()
		return nil, err
	}

	supplyCtrler, xerr := supply.NewSupplyCtrler(config, logger)
	if xerr != nil {
		_ = journal.Close()
		_ = metaDB.Close()
		return nil, xerr
	}

	// The node publishes burn events itself once the block is committed.
	burnCtrler, xerr := burn.NewBurnCtrler(config, supplyCtrler, burn.PassThroughVerifier{}, nil, logger)
	if xerr != nil {
		_ = supplyCtrler.Close()
		_ = journal.Close()
		_ = metaDB.Close()
		return nil, xerr
	}

	node := &BurnNode{
		metaDB:       metaDB,
		supplyCtrler: supplyCtrler,
		burnCtrler:   burnCtrler,
		journal:      journal,
		ledgers:      []ctrlertypes.ILedgerHandler{burnCtrler, supplyCtrler},
		rootConfig:   config,
		logger:       logger.With("module", "autoburn_BurnNode"),
	}

	node.lastBlockCtx, node.lastAppHash = metaDB.LastBlockContext()
	if node.lastBlockCtx == nil {
		node.lastBlockCtx = ctrlertypes.TempBlockContext(config.AutoBurn.ChainID, 0, tmtime.Now())
	}
	// A ledger ahead of the last block was committed by a block that never completed.
	height := node.lastBlockCtx.Height()
	node.resetLedgers(height)
	if height != burnCtrler.Version() || height != supplyCtrler.Version() {
		node.logger.Error("ledger versions differ from the last block",
			"height", height,
			"burnVersion", burnCtrler.Version(),
			"supplyVersion", supplyCtrler.Version())
	}

	node.logger.Info("node opened",
		"version", version.String(),
		"chainId", node.lastBlockCtx.ChainID(),
		"height", node.lastBlockCtx.Height(),
		"appHash", node.lastAppHash)
	return node, nil
}

func (node *BurnNode) Stop() error {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	if xerr := node.burnCtrler.Close(); xerr != nil {
		return xerr
	}
	if xerr := node.supplyCtrler.Close(); xerr != nil {
		return xerr
	}
	if err := node.journal.Close(); err != nil {
		return err
	}
	return node.metaDB.Close()
}

func (node *BurnNode) LastBlockContext() *ctrlertypes.BlockContext {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	return node.lastBlockCtx
}

func (node *BurnNode) LastAppHash() bytes.HexBytes {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	return node.lastAppHash
}

func (node *BurnNode) InitializeBurnConfig(authority, token types.Address, profitThreshold uint64, burnPercentage uint16, minBurnAmount uint64) (*burn.BurnConfig, xerrors.XError) {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	var ret *burn.BurnConfig
	xerr := node.execute(func(bctx *ctrlertypes.BlockContext) (xerr xerrors.XError) {
		ret, xerr = node.burnCtrler.InitBurnConfig(bctx, authority, token, profitThreshold, burnPercentage, minBurnAmount, true)
		return
	})
	return ret, xerr
}

func (node *BurnNode) UpdateBurnConfig(caller, authority, token types.Address, upd *burn.BurnConfigUpdate) (*burn.BurnConfig, xerrors.XError) {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	var ret *burn.BurnConfig
	xerr := node.execute(func(bctx *ctrlertypes.BlockContext) (xerr xerrors.XError) {
		ret, xerr = node.burnCtrler.UpdateBurnConfig(bctx, caller, authority, token, upd, true)
		return
	})
	return ret, xerr
}

func (node *BurnNode) ExecuteAutonomousBurn(req *burn.BurnRequest) (*ctrlertypes.BurnEvent, xerrors.XError) {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	var ret *ctrlertypes.BurnEvent
	xerr := node.execute(func(bctx *ctrlertypes.BlockContext) (xerr xerrors.XError) {
		ret, xerr = node.burnCtrler.ExecuteAutonomousBurn(bctx, req, true)
		return
	})
	if xerr != nil {
		return nil, xerr
	}

	// The burn stays committed even if the journal fails.
	if err := node.journal.Emit(ret); err != nil {
		node.logger.Error("fail to emit burn event", "height", ret.Height, "authority", ret.Authority, "token", ret.Token, "error", err.Error())
	}
	return ret, nil
}

// SimulateAutonomousBurn runs the burn against uncommitted state only.
// Nothing is committed and no event is published.
// Every simulation starts from the last committed state.
func (node *BurnNode) SimulateAutonomousBurn(req *burn.BurnRequest) (*ctrlertypes.BurnEvent, xerrors.XError) {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	defer func() {
		for _, ledger := range node.ledgers {
			if xerr := ledger.ResetSimulation(); xerr != nil {
				node.logger.Error("fail to reset simulation", "error", xerr.Error())
			}
		}
	}()

	bctx := ctrlertypes.ExpectNextBlockContext(node.lastBlockCtx, tmtime.Now())
	return node.burnCtrler.ExecuteAutonomousBurn(bctx, req, false)
}

// Mint seeds balances in the reference token ledger.
func (node *BurnNode) Mint(token, account types.Address, amount uint64) xerrors.XError {
	node.mtx.Lock()
	defer node.mtx.Unlock()

	return node.execute(func(_ *ctrlertypes.BlockContext) xerrors.XError {
		return node.supplyCtrler.Mint(token, account, amount, true)
	})
}

func (node *BurnNode) FindBurnConfig(authority, token types.Address) (*burn.BurnConfig, xerrors.XError) {
	return node.burnCtrler.FindBurnConfig(authority, token, true)
}

func (node *BurnNode) Events(from uint64, limit int) ([]*events.JournalEntry, error) {
	return node.journal.Events(from, limit)
}

// execute runs fn in the next block and commits all ledgers if it succeeds.
// Either every ledger ends up at the new height or none of them does.
func (node *BurnNode) execute(fn func(*ctrlertypes.BlockContext) xerrors.XError) xerrors.XError {
	bctx := ctrlertypes.ExpectNextBlockContext(node.lastBlockCtx, tmtime.Now())

	if xerr := fn(bctx); xerr != nil {
		node.rollbackLedgers(node.ledgers)
		return xerr
	}

	hashes := make([][]byte, 0, len(node.ledgers))
	for i, ledger := range node.ledgers {
		hash, ver, xerr := ledger.Commit()
		if xerr != nil {
			node.logger.Error("fail to commit", "height", bctx.Height(), "error", xerr.Error())
			node.rollbackLedgers(node.ledgers[i:])
			node.resetLedgers(node.lastBlockCtx.Height())
			return xerr
		}
		if ver != bctx.Height() {
			node.logger.Error("ledger version mismatch", "height", bctx.Height(), "version", ver)
		}
		hashes = append(hashes, hash)
	}

	appHash := crypto.Keccak256(hashes...)
	if err := node.metaDB.PutLastBlockContext(bctx, appHash); err != nil {
		node.resetLedgers(node.lastBlockCtx.Height())
		return xerrors.ErrCommit.Wrap(err)
	}
	// The block is recorded; a stale txn counter does not undo it.
	if err := node.metaDB.PutTxn(node.metaDB.Txn() + 1); err != nil {
		node.logger.Error("fail to store txn count", "height", bctx.Height(), "error", err.Error())
	}

	node.lastBlockCtx = bctx
	node.lastAppHash = appHash

	node.logger.Debug("committed", "height", bctx.Height(), "appHash", node.lastAppHash)
	return nil
}

func (node *BurnNode) rollbackLedgers(ledgers []ctrlertypes.ILedgerHandler) {
	for _, ledger := range ledgers {
		ledger.Rollback()
	}
}

// resetLedgers drops every version committed after height.
func (node *BurnNode) resetLedgers(height int64) {
	for _, ledger := range node.ledgers {
		if ledger.Version() <= height {
			continue
		}
		if xerr := ledger.ResetToVersion(height); xerr != nil {
			node.logger.Error("fail to reset ledger", "height", height, "version", ledger.Version(), "error", xerr.Error())
		}
	}
}
