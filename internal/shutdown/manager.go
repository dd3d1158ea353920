package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"shapepad/internal/logger"
)

const DefaultStepTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() { f() }

type entry struct {
	name      string
	component Shutdownable
}

// Manager shuts registered components down in reverse registration order,
// once, on a signal or an explicit call
type Manager struct {
	entries     []entry
	logger      logger.Logger
	stepTimeout time.Duration
	mu          sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
	signals     chan os.Signal
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:      log,
		stepTimeout: DefaultStepTimeout,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetStepTimeout bounds how long a single component may take
func (m *Manager) SetStepTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stepTimeout = d
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry{name: name, component: component})
}

// Listen reacts to SIGINT or SIGTERM. A non-nil onSignal is called instead
// of Shutdown, on the signal goroutine, and must arrange for Shutdown to run
// where the components' state may be read, typically after the UI loop has
// returned. With a nil onSignal, Shutdown runs directly.
func (m *Manager) Listen(onSignal func()) {
	m.signals = make(chan os.Signal, 1)
	signal.Notify(m.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-m.signals:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
				return
			}
			m.Shutdown()
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	if m.signals != nil {
		signal.Stop(m.signals)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.entries),
	})

	m.cancel()

	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			e.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": e.name,
			})
		case <-time.After(m.stepTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": e.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
