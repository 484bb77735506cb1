package mocks

import (
	"sync"

	ctrlertypes "github.com/beatoz/autoburn/ctrlers/types"
	"github.com/beatoz/autoburn/types/xerrors"
)

// EventEmitterMock keeps the emitted events in memory and fails with Err when it is set.
type EventEmitterMock struct {
	Err    xerrors.XError
	events []*ctrlertypes.BurnEvent

	mtx sync.Mutex
}

var _ ctrlertypes.IEventEmitter = (*EventEmitterMock)(nil)

func NewEventEmitterMock() *EventEmitterMock {
	return &EventEmitterMock{}
}

func (m *EventEmitterMock) Emit(evt *ctrlertypes.BurnEvent) xerrors.XError {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.events = append(m.events, evt)
	return nil
}

func (m *EventEmitterMock) Events() []*ctrlertypes.BurnEvent {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	return append([]*ctrlertypes.BurnEvent(nil), m.events...)
}
