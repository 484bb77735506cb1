package v1

import (
	"bytes"
	"sort"

	"github.com/beatoz/autoburn/types/xerrors"
	"github.com/cosmos/iavl"
)

type FuncNewItemFor func(LedgerKey) ILedgerItem
type FuncIterate func(LedgerKey, ILedgerItem) xerrors.XError

type IGettable interface {
	Get(LedgerKey) (ILedgerItem, xerrors.XError)
	Iterate(FuncIterate) xerrors.XError
	Seek([]byte, bool, FuncIterate) xerrors.XError
}

type ISettable interface {
	Set(ILedgerItem) xerrors.XError
	Del(LedgerKey) xerrors.XError
	Snapshot() int
	RevertToSnapshot(int) xerrors.XError
}

type ICommittable interface {
	Commit() ([]byte, int64, xerrors.XError)
}

type IImitable interface {
	IGettable
	ISettable
}

type IMutable interface {
	IGettable
	ISettable
	ICommittable
	Version() int64
	GetReadOnlyTree(int64) (*iavl.ImmutableTree, xerrors.XError)
	Close() xerrors.XError
}

type IStateLedger[T ILedgerItem] interface {
	Version() int64
	Get(LedgerKey, bool) (T, xerrors.XError)
	Iterate(func(T) xerrors.XError, bool) xerrors.XError
	Seek([]byte, bool, func(T) xerrors.XError, bool) xerrors.XError
	Set(T, bool) xerrors.XError
	Del(LedgerKey, bool) xerrors.XError
	Snapshot(bool) int
	RevertToSnapshot(int, bool) xerrors.XError
	Commit() ([]byte, int64, xerrors.XError)
	Rollback()
	ResetSimulation() xerrors.XError
	ResetToVersion(int64) xerrors.XError
	Close() xerrors.XError
	ImitableLedgerAt(int64) (IImitable, xerrors.XError)
}

type ILedgerItem interface {
	Key() LedgerKey
	Encode() ([]byte, xerrors.XError)
	Decode(LedgerKey, []byte) xerrors.XError
}

type LedgerKey = []byte

// decodeItem builds the item stored under key and checks that it really belongs to key.
func decodeItem(newItemFor FuncNewItemFor, key LedgerKey, value []byte) (ILedgerItem, xerrors.XError) {
	item := newItemFor(key)
	if xerr := item.Decode(key, value); xerr != nil {
		return nil, xerr
	}
	if !bytes.Equal(item.Key(), key) {
		return nil, xerrors.ErrCommon.Wrapf("ledger item is stored under %x but its key is %x", key, item.Key())
	}
	return item, nil
}

type LedgerKeyList []LedgerKey

func (a LedgerKeyList) Len() int {
	return len(a)
}
func (a LedgerKeyList) Less(i, j int) bool {
	ret := bytes.Compare(a[i][:], a[j][:])
	return ret > 0
}
func (a LedgerKeyList) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

var _ sort.Interface = LedgerKeyList(nil)
