package v1

import (
	"github.com/beatoz/autoburn/types/xerrors"
	tmlog "github.com/tendermint/tendermint/libs/log"
	"sync"
)

// StateLedger pairs a committable ledger with a MemLedger on top of its last committed version.
// Every method takes `exec`: if it is true the committable ledger is used,
// otherwise the MemLedger is used and its changes are discarded at the next Commit.
type StateLedger[T ILedgerItem] struct {
	commitLedger   *MutableLedger
	imitableLedger *MemLedger

	logger tmlog.Logger
	mtx    sync.RWMutex
}

var _ IStateLedger[ILedgerItem] = (*StateLedger[ILedgerItem])(nil)

func NewStateLedger[T ILedgerItem](name, dbDir string, cacheSize int, newItem func(LedgerKey) T, lg tmlog.Logger) (*StateLedger[T], xerrors.XError) {
	newItemFor := func(key LedgerKey) ILedgerItem { return newItem(key) }
	_commitLedger, xerr := NewMutableLedger(name, dbDir, cacheSize, newItemFor, lg)
	if xerr != nil {
		return nil, xerr
	}
	_imitableLedger, xerr := NewMemLedgerAt(_commitLedger.Version(), _commitLedger, lg)
	if xerr != nil {
		_ = _commitLedger.Close()
		return nil, xerr
	}

	return &StateLedger[T]{
		commitLedger:   _commitLedger,
		imitableLedger: _imitableLedger,
		logger:         lg.With("ledger", "StateLedger"),
	}, nil
}

func (ledger *StateLedger[T]) getLedger(exec bool) IImitable {
	if exec {
		return ledger.commitLedger
	}
	return ledger.imitableLedger
}

func (ledger *StateLedger[T]) Version() int64 {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.commitLedger.Version()
}

func (ledger *StateLedger[T]) Get(key LedgerKey, exec bool) (T, xerrors.XError) {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	var emptyNil T
	item, xerr := ledger.getLedger(exec).Get(key)
	if xerr != nil {
		return emptyNil, xerr
	}
	ret, ok := item.(T)
	if !ok {
		return emptyNil, xerrors.ErrInvalidAccountType.Wrapf("unexpected ledger item type %T", item)
	}
	return ret, nil
}

func (ledger *StateLedger[T]) Iterate(cb func(T) xerrors.XError, exec bool) xerrors.XError {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.getLedger(exec).Iterate(func(_ LedgerKey, item ILedgerItem) xerrors.XError {
		return cb(item.(T))
	})
}

func (ledger *StateLedger[T]) Seek(prefix []byte, ascending bool, cb func(T) xerrors.XError, exec bool) xerrors.XError {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.getLedger(exec).Seek(prefix, ascending, func(_ LedgerKey, item ILedgerItem) xerrors.XError {
		return cb(item.(T))
	})
}

func (ledger *StateLedger[T]) Set(item T, exec bool) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	return ledger.getLedger(exec).Set(item)
}

func (ledger *StateLedger[T]) Del(key LedgerKey, exec bool) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	return ledger.getLedger(exec).Del(key)
}

func (ledger *StateLedger[T]) Snapshot(exec bool) int {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.getLedger(exec).Snapshot()
}

func (ledger *StateLedger[T]) RevertToSnapshot(snap int, exec bool) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	return ledger.getLedger(exec).RevertToSnapshot(snap)
}

func (ledger *StateLedger[T]) Commit() ([]byte, int64, xerrors.XError) {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	hash, ver, xerr := ledger.commitLedger.Commit()
	if xerr != nil {
		return nil, 0, xerr
	}

	ledger.imitableLedger, xerr = NewMemLedgerAt(ver, ledger.commitLedger, ledger.logger)
	if xerr != nil {
		return nil, 0, xerr
	}

	return hash, ver, nil
}

// Rollback discards the uncommitted changes made with `exec` true.
func (ledger *StateLedger[T]) Rollback() {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.commitLedger.Rollback()
}

// ResetSimulation discards every change made with `exec` false.
func (ledger *StateLedger[T]) ResetSimulation() xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	mem, xerr := NewMemLedgerAt(ledger.commitLedger.Version(), ledger.commitLedger, ledger.logger)
	if xerr != nil {
		return xerr
	}
	ledger.imitableLedger = mem
	return nil
}

// ResetToVersion drops the versions committed after ver.
func (ledger *StateLedger[T]) ResetToVersion(ver int64) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	if xerr := ledger.commitLedger.ResetToVersion(ver); xerr != nil {
		return xerr
	}
	mem, xerr := NewMemLedgerAt(ledger.commitLedger.Version(), ledger.commitLedger, ledger.logger)
	if xerr != nil {
		return xerr
	}
	ledger.imitableLedger = mem
	return nil
}

func (ledger *StateLedger[T]) Close() xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	if ledger.commitLedger != nil {
		if xerr := ledger.commitLedger.Close(); xerr != nil {
			return xerr
		}
		ledger.commitLedger = nil
	}
	ledger.imitableLedger = nil
	return nil
}

// ImitableLedgerAt returns the ledger that is immutable and not committable.
func (ledger *StateLedger[T]) ImitableLedgerAt(height int64) (IImitable, xerrors.XError) {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return NewMemLedgerAt(height, ledger.commitLedger, ledger.logger)
}
