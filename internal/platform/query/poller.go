package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

// poller rescans registered keys on a wall-clock ticker and refetches
// the ones whose poll interval elapsed. A key with a fetch outstanding
// is skipped, not queued.
type poller struct {
	engine       *Engine
	pool         *ants.Pool
	scanInterval time.Duration
	activeFor    time.Duration

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	tasks    sync.WaitGroup
}

func newPoller(e *Engine, cfg Config) (*poller, error) {
	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create poll pool: %w", err)
	}

	p := &poller{
		engine:       e,
		pool:         pool,
		scanInterval: cfg.ScanInterval,
		activeFor:    cfg.ActiveFor,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	go p.run()
	return p, nil
}

func (p *poller) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.scan()
		}
	}
}

type pollTask struct {
	key      string
	ent      *entry
	interval time.Duration
}

func (p *poller) scan() {
	e := p.engine
	live := e.mode.Live()
	now := time.Now()

	e.mu.Lock()
	var due []pollTask
	for _, k := range e.entries.Keys() {
		key, _ := k.(string)
		ent, ok := e.peekLocked(key)
		if !ok {
			continue
		}
		interval := ent.opts.PollEvery
		if !live && ent.opts.PollIdle > 0 {
			interval = ent.opts.PollIdle
		}
		if interval <= 0 || ent.opts.Disabled || ent.loader == nil {
			continue
		}
		if ent.inflight {
			continue
		}
		if now.Sub(ent.lastLookup) > p.activeFor {
			continue
		}
		if now.Sub(ent.checkedAt) < interval {
			continue
		}
		due = append(due, pollTask{key: key, ent: ent, interval: interval})
	}
	e.mu.Unlock()

	for _, task := range due {
		task := task
		p.tasks.Add(1)
		if err := p.pool.Submit(func() {
			defer p.tasks.Done()
			// Passing the interval as the freshness floor makes a task
			// that sat queued behind a completed refresh a no-op.
			e.fetchShared(context.Background(), task.key, task.ent, task.interval)
		}); err != nil {
			p.tasks.Done()
		}
	}
}

func (p *poller) stopAndWait() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
	<-p.done
	p.tasks.Wait()
	p.pool.Release()
}
