package v1

import (
	"bytes"
	"sync"
	"unsafe"

	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/cosmos/iavl"
	dbm "github.com/cosmos/iavl/db"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// MutableLedger is the committable ledger backed by an iavl tree on goleveldb.
// Every Set/Del records the previous value so that a snapshot can be reverted
// before the next Commit.
type MutableLedger struct {
	db        dbm.DB
	tree      *iavl.MutableTree
	revisions *revisionList[[]byte]
	cache     map[string]ILedgerItem
	cacheSize int

	newItemFor FuncNewItemFor

	logger tmlog.Logger
	mtx    sync.RWMutex
}

func NewMutableLedger(name, dbDir string, cacheSize int, newItem FuncNewItemFor, lg tmlog.Logger) (*MutableLedger, xerrors.XError) {
	db, err := dbm.NewGoLevelDB(name, dbDir)
	if err != nil {
		return nil, xerrors.Wrap(err, "goleveldb open failed")
	}

	tree := iavl.NewMutableTree(db, cacheSize, false, iavl.NewNopLogger(), iavl.SyncOption(true))
	if _, err := tree.LoadVersion(0); err != nil {
		_ = tree.Close()
		return nil, xerrors.Wrap(err, "tree's LoadVersion failed")
	}

	return &MutableLedger{
		db:         db,
		tree:       tree,
		revisions:  newRevisionList[[]byte](),
		cache:      make(map[string]ILedgerItem),
		cacheSize:  cacheSize,
		newItemFor: newItem,
		logger:     lg.With("ledger", name),
	}, nil
}

func (ledger *MutableLedger) Get(key LedgerKey) (ILedgerItem, xerrors.XError) {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	if len(key) == 0 {
		return nil, xerrors.ErrNotFoundResult
	}
	if item, ok := ledger.cache[unsafe.String(&key[0], len(key))]; ok {
		return item, nil
	}

	bz, err := ledger.tree.Get(key)
	if err != nil {
		return nil, xerrors.From(err)
	} else if bz == nil {
		return nil, xerrors.ErrNotFoundResult
	}

	item, xerr := decodeItem(ledger.newItemFor, key, bz)
	if xerr != nil {
		return nil, xerr
	}
	ledger.cache[string(key)] = item
	return item, nil
}

// Iterate travels the whole working tree in ascending key order.
func (ledger *MutableLedger) Iterate(cb FuncIterate) xerrors.XError {
	return ledger.Seek(nil, true, cb)
}

// Seek travels the items whose key starts with prefix.
// The items set after the last commit are included.
func (ledger *MutableLedger) Seek(prefix []byte, ascending bool, cb FuncIterate) xerrors.XError {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	iter, err := ledger.tree.Iterator(prefix, nil, ascending)
	if err != nil {
		return xerrors.From(err)
	}
	defer func() {
		_ = iter.Close()
	}()

	for ; iter.Valid(); iter.Next() {
		key := iter.Key()
		if !bytes.HasPrefix(key, prefix) {
			break
		}
		item, xerr := decodeItem(ledger.newItemFor, key, iter.Value())
		if xerr != nil {
			return xerr
		}
		if xerr := cb(key, item); xerr != nil {
			return xerr
		}
	}
	return xerrors.From(iter.Error())
}

func (ledger *MutableLedger) Set(item ILedgerItem) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	key := item.Key()
	newVal, xerr := item.Encode()
	if xerr != nil {
		return xerr
	}
	oldVal, err := ledger.tree.Get(key)
	if err != nil {
		return xerrors.From(err)
	}
	if _, err := ledger.tree.Set(key, newVal); err != nil {
		return xerrors.From(err)
	}
	ledger.logger.Debug("set item", "key", key, "created", oldVal == nil)

	// nil oldVal means a new item which is removed in reverting.
	if !bytes.Equal(oldVal, newVal) {
		ledger.revisions.set(key, oldVal)
	}
	ledger.cache[string(key)] = item
	return nil
}

func (ledger *MutableLedger) Del(key LedgerKey) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	oldVal, removed, err := ledger.tree.Remove(key)
	if err != nil {
		return xerrors.From(err)
	}
	ledger.logger.Debug("delete item", "key", key, "removed", removed)

	if removed {
		ledger.revisions.set(key, oldVal)
	}
	delete(ledger.cache, string(key))
	return nil
}

func (ledger *MutableLedger) Snapshot() int {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.revisions.snapshot()
}

func (ledger *MutableLedger) RevertToSnapshot(snap int) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	for _, kv := range ledger.revisions.restores(snap) {
		delete(ledger.cache, string(kv.key))
		if kv.val == nil {
			if _, _, err := ledger.tree.Remove(kv.key); err != nil {
				return xerrors.From(err)
			}
			continue
		}
		if _, err := ledger.tree.Set(kv.key, kv.val); err != nil {
			return xerrors.From(err)
		}
	}
	ledger.revisions.revert(snap)
	return nil
}

// Commit saves the working tree as a new version and returns its hash and version.
func (ledger *MutableLedger) Commit() ([]byte, int64, xerrors.XError) {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.tree.SetCommitting()
	defer ledger.tree.UnsetCommitting()

	hash, ver, err := ledger.tree.SaveVersion()
	if err != nil {
		return nil, 0, xerrors.From(err)
	}
	ledger.logger.Debug("commit", "hash", hash, "version", ver)

	ledger.resetWorkingSet()
	return hash, ver, nil
}

// Rollback discards every change made since the last commit.
func (ledger *MutableLedger) Rollback() {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.tree.Rollback()
	ledger.resetWorkingSet()
}

// ResetToVersion removes every version after ver and reloads the tree at ver.
// Uncommitted changes are discarded.
func (ledger *MutableLedger) ResetToVersion(ver int64) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	latest := ledger.tree.Version()
	if ver < 0 || ver > latest {
		return xerrors.ErrCommon.Wrapf("can not reset to version %d (latest: %d)", ver, latest)
	}

	ledger.tree.Rollback()
	ledger.resetWorkingSet()
	if ver == latest {
		return nil
	}

	if err := ledger.tree.DeleteVersionsFrom(ver + 1); err != nil {
		return xerrors.Wrap(err, "tree's DeleteVersionsFrom failed")
	}

	// The stale tree still points at the deleted root, so it is replaced by one loaded from the db.
	// Closing a tree does not close the db under it.
	if err := ledger.tree.Close(); err != nil {
		return xerrors.From(err)
	}
	tree := iavl.NewMutableTree(ledger.db, ledger.cacheSize, false, iavl.NewNopLogger(), iavl.SyncOption(true))
	if _, err := tree.LoadVersion(0); err != nil {
		return xerrors.Wrap(err, "tree's LoadVersion failed")
	}
	ledger.tree = tree

	ledger.logger.Info("reset to version", "from", latest, "to", tree.Version())
	return nil
}

func (ledger *MutableLedger) resetWorkingSet() {
	ledger.revisions.reset()
	ledger.cache = make(map[string]ILedgerItem)
}

func (ledger *MutableLedger) Version() int64 {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.tree.Version()
}

func (ledger *MutableLedger) GetReadOnlyTree(ver int64) (*iavl.ImmutableTree, xerrors.XError) {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	tree, err := ledger.tree.GetImmutable(ver)
	if err != nil {
		return nil, xerrors.From(err)
	}
	return tree, nil
}

func (ledger *MutableLedger) Close() xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	if ledger.tree != nil {
		if err := ledger.tree.Close(); err != nil {
			return xerrors.From(err)
		}
		ledger.tree = nil
	}
	if ledger.db != nil {
		if err := ledger.db.Close(); err != nil {
			return xerrors.From(err)
		}
		ledger.db = nil
	}
	ledger.resetWorkingSet()
	return nil
}

var _ IMutable = (*MutableLedger)(nil)
