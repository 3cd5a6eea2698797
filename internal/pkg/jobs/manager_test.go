package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSweeper struct {
	count int
	err   error
	calls int
}

func (f *fakeSweeper) SweepExpired() (int, error) {
	f.calls++
	return f.count, f.err
}

func TestGetManager_Singleton(t *testing.T) {
	first := GetManager(&fakeSweeper{})
	second := GetManager(&fakeSweeper{})
	assert.Same(t, first, second)
}

func TestRunSweep(t *testing.T) {
	sweeper := &fakeSweeper{count: 3}
	m := &Manager{sweeper: sweeper, stopCh: make(chan struct{})}

	m.runSweep()
	assert.Equal(t, 1, sweeper.calls)

	// A failing sweep is logged, not retried within the run.
	sweeper.err = errors.New("db down")
	m.runSweep()
	assert.Equal(t, 2, sweeper.calls)
}

func TestStart_RunsSweepImmediately(t *testing.T) {
	sweeper := &fakeSweeper{}
	m := &Manager{sweeper: sweeper, stopCh: make(chan struct{})}

	m.Start()
	defer m.Stop()

	// The boot sweep runs synchronously inside Start, before any tick.
	assert.Equal(t, 1, sweeper.calls)
}

func TestStart_Twice(t *testing.T) {
	sweeper := &fakeSweeper{}
	m := &Manager{sweeper: sweeper, stopCh: make(chan struct{})}

	m.Start()
	m.Start()
	defer m.Stop()

	assert.Equal(t, 1, sweeper.calls)
}

func TestStop_WithoutStartIsNoOp(t *testing.T) {
	m := &Manager{sweeper: &fakeSweeper{}, stopCh: make(chan struct{})}
	m.Stop()
}
