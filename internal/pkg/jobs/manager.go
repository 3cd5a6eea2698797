package jobs

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/KarimAldeen/MenuDeck/internal/pkg/env"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/statistics"
	"github.com/KarimAldeen/MenuDeck/internal/pkg/subscription"
)

// Sweeper is the part of the subscription service the job manager drives.
type Sweeper interface {
	SweepExpired() (int, error)
}

// Manager runs the periodic background tasks: the subscription expiry sweep
// and the statistics cache refresh. The sweep replaces the original
// per-request random trigger with a fixed schedule; the sweep itself is
// idempotent, so the interval only bounds how late an expiry can be applied.
type Manager struct {
	sweeper     Sweeper
	sweepTicker *time.Ticker
	statsTicker *time.Ticker
	stopCh      chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	running     bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global job manager (singleton).
func GetManager(sweeper Sweeper) *Manager {
	managerOnce.Do(func() {
		globalManager = &Manager{
			sweeper: sweeper,
			stopCh:  make(chan struct{}),
		}
	})
	return globalManager
}

// Start starts the background tasks and runs one sweep immediately so
// expired subscriptions are not left waiting a full interval after boot.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so the manager can be restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[Jobs] Starting background tasks")

	sweepInterval := time.Duration(env.GetEnvInt("SUBSCRIPTION_SWEEP_INTERVAL_MINUTES", 60)) * time.Minute
	statsInterval := time.Duration(env.GetEnvInt("STATISTICS_REFRESH_INTERVAL_MINUTES", 5)) * time.Minute

	m.runSweep()

	m.sweepTicker = time.NewTicker(sweepInterval)
	m.wg.Add(1)
	go m.sweepWorker()

	m.statsTicker = time.NewTicker(statsInterval)
	m.wg.Add(1)
	go m.statsWorker()
}

// Stop stops the background tasks and waits for the workers to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[Jobs] Stopping background tasks")
	close(m.stopCh)

	if m.sweepTicker != nil {
		m.sweepTicker.Stop()
	}
	if m.statsTicker != nil {
		m.statsTicker.Stop()
	}

	m.wg.Wait()
	m.running = false
}

func (m *Manager) sweepWorker() {
	defer m.wg.Done()

	for {
		select {
		case <-m.sweepTicker.C:
			m.runSweep()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) statsWorker() {
	defer m.wg.Done()

	for {
		select {
		case <-m.statsTicker.C:
			statistics.UpdateCacheIfNeeded()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Manager) runSweep() {
	count, err := m.sweeper.SweepExpired()
	if err != nil {
		log.Errorf("[Jobs] Subscription expiry sweep failed after %d transitions: %v", count, err)
		return
	}
	if count > 0 {
		log.Infof("[Jobs] Subscription expiry sweep transitioned %d restaurants", count)
	}
}

// interface guard
var _ Sweeper = (*subscription.Service)(nil)
