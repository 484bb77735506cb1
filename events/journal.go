package events

import (
	"encoding/binary"
	"sync"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/libs/jsonx"
	"github.com/beatoz/autoburn/types/xerrors"
	tmlog "github.com/tendermint/tendermint/libs/log"
	tmdb "github.com/tendermint/tm-db"
)

var (
	keyLastSeq     = []byte("seq")
	keyPrefixEvent = []byte("ev/")
)

// JournalEntry is a BurnEvent with the sequence number it was appended at.
type JournalEntry struct {
	Seq   uint64                 `json:"seq"`
	Event *ctrlertypes.BurnEvent `json:"event"`
}

// EventJournal is an append-only store of BurnEvents.
// Sequence numbers start at 1 and have no gaps.
type EventJournal struct {
	db      tmdb.DB
	lastSeq uint64

	logger tmlog.Logger
	mtx    sync.RWMutex
}

var _ ctrlertypes.IEventEmitter = (*EventJournal)(nil)

func OpenEventJournal(name, backend, dir string, logger tmlog.Logger) (*EventJournal, error) {
	// The returned 'db' instance is safe in concurrent use.
	db, err := tmdb.NewDB(name, tmdb.BackendType(backend), dir)
	if err != nil {
		return nil, err
	}
	return NewEventJournal(db, logger)
}

func NewEventJournal(db tmdb.DB, logger tmlog.Logger) (*EventJournal, error) {
	lastSeq := uint64(0)
	v, err := db.Get(keyLastSeq)
	if err != nil {
		return nil, err
	}
	if v != nil {
		lastSeq = binary.BigEndian.Uint64(v)
	}

	return &EventJournal{
		db:      db,
		lastSeq: lastSeq,
		logger:  logger.With("module", "autoburn_EventJournal"),
	}, nil
}

func (journal *EventJournal) Close() error {
	journal.mtx.Lock()
	defer journal.mtx.Unlock()

	return journal.db.Close()
}

// Emit appends evt. The event and the new sequence number are written in one synced batch.
func (journal *EventJournal) Emit(evt *ctrlertypes.BurnEvent) xerrors.XError {
	journal.mtx.Lock()
	defer journal.mtx.Unlock()

	bz, err := jsonx.Marshal(evt)
	if err != nil {
		return xerrors.From(err)
	}

	seq := journal.lastSeq + 1
	batch := journal.db.NewBatch()
	defer batch.Close()

	if err := batch.Set(eventKey(seq), bz); err != nil {
		return xerrors.From(err)
	}
	if err := batch.Set(keyLastSeq, seqBytes(seq)); err != nil {
		return xerrors.From(err)
	}
	if err := batch.WriteSync(); err != nil {
		return xerrors.From(err)
	}
	journal.lastSeq = seq

	journal.logger.Debug("burn event appended", "seq", seq, "authority", evt.Authority, "token", evt.Token, "amount", evt.Amount)
	return nil
}

func (journal *EventJournal) LastSeq() uint64 {
	journal.mtx.RLock()
	defer journal.mtx.RUnlock()

	return journal.lastSeq
}

// Events returns up to limit entries starting at sequence number from.
// A limit of 0 or less returns everything after from.
func (journal *EventJournal) Events(from uint64, limit int) ([]*JournalEntry, error) {
	journal.mtx.RLock()
	defer journal.mtx.RUnlock()

	if from == 0 {
		from = 1
	}
	if from > journal.lastSeq {
		return nil, nil
	}

	iter, err := journal.db.Iterator(eventKey(from), eventKey(journal.lastSeq+1))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ret []*JournalEntry
	for ; iter.Valid(); iter.Next() {
		if limit > 0 && len(ret) >= limit {
			break
		}
		evt := &ctrlertypes.BurnEvent{}
		if err := jsonx.Unmarshal(iter.Value(), evt); err != nil {
			return nil, err
		}
		ret = append(ret, &JournalEntry{
			Seq:   binary.BigEndian.Uint64(iter.Key()[len(keyPrefixEvent):]),
			Event: evt,
		})
	}
	return ret, iter.Error()
}

func eventKey(seq uint64) []byte {
	k := make([]byte, len(keyPrefixEvent)+8)
	copy(k, keyPrefixEvent)
	binary.BigEndian.PutUint64(k[len(keyPrefixEvent):], seq)
	return k
}

func seqBytes(seq uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, seq)
	return bz
}
