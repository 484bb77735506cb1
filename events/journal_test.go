package events

import (
	"os"
	"testing"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/types"
	"github.com/stretchr/testify/require"
	tmlog "github.com/tendermint/tendermint/libs/log"
	tmdb "github.com/tendermint/tm-db"
)

func newEvent(i int) *ctrlertypes.BurnEvent {
	return &ctrlertypes.BurnEvent{
		Authority:    types.RandAddress(),
		Token:        types.RandAddress(),
		Amount:       uint64(i * 100),
		ProfitAmount: uint64(i * 2000),
		TotalBurned:  uint64(i * 100),
		BurnCount:    uint64(i),
		Timestamp:    int64(1_700_000_000 + i),
		Height:       int64(i),
	}
}

func TestEmitAndRead(t *testing.T) {
	journal, err := NewEventJournal(tmdb.NewMemDB(), tmlog.NewNopLogger())
	require.NoError(t, err)
	require.Zero(t, journal.LastSeq())

	entries, err := journal.Events(0, 0)
	require.NoError(t, err)
	require.Empty(t, entries)

	var emitted []*ctrlertypes.BurnEvent
	for i := 1; i <= 20; i++ {
		evt := newEvent(i)
		require.NoError(t, journal.Emit(evt))
		emitted = append(emitted, evt)
	}
	require.Equal(t, uint64(20), journal.LastSeq())

	entries, err = journal.Events(0, 0)
	require.NoError(t, err)
	require.Len(t, entries, 20)
	for i, entry := range entries {
		require.Equal(t, uint64(i+1), entry.Seq)
		require.Equal(t, emitted[i], entry.Event)
	}

	entries, err = journal.Events(5, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, uint64(5), entries[0].Seq)
	require.Equal(t, uint64(7), entries[2].Seq)

	entries, err = journal.Events(19, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = journal.Events(21, 10)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestReopen(t *testing.T) {
	dir, err := os.MkdirTemp("", "event-journal-test")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	journal, err := OpenEventJournal("events", "goleveldb", dir, tmlog.NewNopLogger())
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, journal.Emit(newEvent(i)))
	}
	require.NoError(t, journal.Close())

	journal, err = OpenEventJournal("events", "goleveldb", dir, tmlog.NewNopLogger())
	require.NoError(t, err)
	defer journal.Close()

	require.Equal(t, uint64(3), journal.LastSeq())
	require.NoError(t, journal.Emit(newEvent(4)))

	entries, err := journal.Events(1, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.Equal(t, uint64(4), entries[3].Seq)
	require.Equal(t, uint64(4), entries[3].Event.BurnCount)
}

func TestOpenEventJournal_UnknownBackend(t *testing.T) {
	_, err := OpenEventJournal("events", "no-such-backend", os.TempDir(), tmlog.NewNopLogger())
	require.Error(t, err)
}
