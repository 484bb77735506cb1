package v1

import (
	"bytes"
	"sort"
	"sync"

	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/cosmos/iavl"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// MemLedger cannot be committed, everything else is like MutableLedger.
// It overlays uncommitted writes on a read-only tree of a committed version.
type MemLedger struct {
	immuTree   *iavl.ImmutableTree
	items      map[string]ILedgerItem
	revisions  *revisionList[*memSlot]
	newItemFor FuncNewItemFor
	logger     tmlog.Logger
	mtx        sync.RWMutex
}

var _ IImitable = (*MemLedger)(nil)

// memSlot is the previous state of an entry in MemLedger.items.
// A nil *memSlot means there was no entry, a slot with nil item means the entry marked the item deleted.
type memSlot struct {
	item ILedgerItem
}

func NewMemLedgerAt(ver int64, from *MutableLedger, lg tmlog.Logger) (*MemLedger, xerrors.XError) {
	var tree *iavl.ImmutableTree
	if ver > 0 {
		_tree, xerr := from.GetReadOnlyTree(ver)
		if xerr != nil {
			return nil, xerr
		}
		tree = _tree
	}

	return &MemLedger{
		immuTree:   tree,
		items:      make(map[string]ILedgerItem),
		revisions:  newRevisionList[*memSlot](),
		newItemFor: from.newItemFor,
		logger:     lg.With("ledger", "MemLedger"),
	}, nil
}

func (ledger *MemLedger) Get(key LedgerKey) (ILedgerItem, xerrors.XError) {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	return ledger.get(key)
}

func (ledger *MemLedger) get(key LedgerKey) (ILedgerItem, xerrors.XError) {
	item, ok := ledger.items[string(key)]
	if ok {
		if item != nil {
			return item, nil
		}
		// the `item` was deleted on MemLedger.
		return nil, xerrors.ErrNotFoundResult
	}

	if ledger.immuTree == nil {
		return nil, xerrors.ErrNotFoundResult
	}

	bz, err := ledger.immuTree.Get(key)
	if err != nil {
		return nil, xerrors.From(err)
	} else if bz == nil {
		return nil, xerrors.ErrNotFoundResult
	}

	return decodeItem(ledger.newItemFor, key, bz)
}

// Iterate travels the committed items overlaid by the items written on MemLedger.
func (ledger *MemLedger) Iterate(cb FuncIterate) xerrors.XError {
	return ledger.Seek(nil, true, cb)
}

func (ledger *MemLedger) Seek(prefix []byte, ascending bool, cb FuncIterate) xerrors.XError {
	ledger.mtx.RLock()
	merged := make(map[string]ILedgerItem)
	if ledger.immuTree != nil {
		var xerrStop xerrors.XError
		stopped, err := ledger.immuTree.Iterate(func(key []byte, value []byte) bool {
			if !bytes.HasPrefix(key, prefix) {
				return false
			}
			item, xerr := decodeItem(ledger.newItemFor, key, value)
			if xerr != nil {
				xerrStop = xerr
				return true // stop
			}
			merged[string(key)] = item
			return false
		})
		if err != nil {
			ledger.mtx.RUnlock()
			return xerrors.From(err)
		} else if stopped {
			ledger.mtx.RUnlock()
			return xerrStop
		}
	}
	for k, item := range ledger.items {
		if !bytes.HasPrefix([]byte(k), prefix) {
			continue
		}
		if item == nil {
			delete(merged, k)
		} else {
			merged[k] = item
		}
	}
	ledger.mtx.RUnlock()

	keys := make(LedgerKeyList, 0, len(merged))
	for k := range merged {
		keys = append(keys, LedgerKey(k))
	}
	// LedgerKeyList sorts in descending order.
	sort.Sort(keys)
	if ascending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	for _, k := range keys {
		if xerr := cb(k, merged[string(k)]); xerr != nil {
			return xerr
		}
	}
	return nil
}

func (ledger *MemLedger) Set(item ILedgerItem) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.put(item.Key(), item)
	return nil
}

func (ledger *MemLedger) Del(key LedgerKey) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.put(key, nil)
	return nil
}

func (ledger *MemLedger) put(key LedgerKey, item ILedgerItem) {
	keyStr := string(key)
	if oldItem, ok := ledger.items[keyStr]; ok {
		ledger.revisions.set(key, &memSlot{item: oldItem})
	} else {
		ledger.revisions.set(key, nil)
	}
	ledger.items[keyStr] = item
}

func (ledger *MemLedger) Snapshot() int {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.revisions.snapshot()
}

func (ledger *MemLedger) RevertToSnapshot(snap int) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	for _, kv := range ledger.revisions.restores(snap) {
		if kv.val != nil {
			ledger.items[string(kv.key)] = kv.val.item
		} else {
			// nothing was written on MemLedger before, so the committed item becomes visible again.
			delete(ledger.items, string(kv.key))
		}
	}
	ledger.revisions.revert(snap)
	return nil
}
