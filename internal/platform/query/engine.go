package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/fplpulse/fplpulse/internal/platform/logging"
	"github.com/fplpulse/fplpulse/internal/platform/resilience"
)

// Options controls one lookup: how long a snapshot stays fresh, how
// often the poller refetches the key, and whether the key is gated off
// entirely.
type Options struct {
	FreshFor  time.Duration
	PollEvery time.Duration
	// PollIdle, when set, replaces PollEvery while the refresh mode is
	// idle. The poller reads the mode at scan time.
	PollIdle time.Duration
	Disabled bool
}

// Snapshot is the engine's view of one key: the last good data, the
// error of the last fetch if it failed, and when the data landed.
// Data survives a failed refetch so callers can keep rendering it.
type Snapshot struct {
	Data      any
	Err       error
	UpdatedAt time.Time
}

// Loader fetches fresh data for a key.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	gen uint64

	data      any
	err       error
	updatedAt time.Time // last successful fetch
	checkedAt time.Time // last completed fetch, success or failure
	seq       uint64    // sequence of the last accepted result
	nextSeq   uint64
	inflight  bool
	errLogged bool

	lastLookup time.Time
	loader     Loader
	opts       Options
}

func (ent *entry) snapshot() Snapshot {
	return Snapshot{
		Data:      ent.data,
		Err:       ent.err,
		UpdatedAt: ent.updatedAt,
	}
}

// Config sizes the engine.
type Config struct {
	// Size bounds the snapshot store; evicting a cold key behaves like
	// invalidating it.
	Size int
	// ScanInterval is the poller's wall-clock scan cadence.
	ScanInterval time.Duration
	// Workers sizes the refetch pool.
	Workers int
	// ActiveFor stops polling keys that have not been looked up within
	// the window; the next lookup resumes it.
	ActiveFor time.Duration
}

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.ScanInterval <= 0 {
		c.ScanInterval = time.Second
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.ActiveFor <= 0 {
		c.ActiveFor = 5 * time.Minute
	}
	return c
}

// Engine is a process-wide cache of query snapshots. Equal keys share
// one snapshot and at most one in-flight fetch; results are tagged
// with a per-key sequence so a refetch never overwrites a newer result
// with an older one.
type Engine struct {
	mu      sync.Mutex
	entries *lru.Cache
	gen     uint64

	flight resilience.SingleFlight
	mode   *ModeSource
	log    *logging.Logger

	poller *poller
}

func NewEngine(cfg Config, mode *ModeSource, logger *logging.Logger) (*Engine, error) {
	cfg = cfg.withDefaults()

	entries, err := lru.New(cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("create snapshot store: %w", err)
	}
	if mode == nil {
		mode = &ModeSource{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	e := &Engine{
		entries: entries,
		mode:    mode,
		log:     logger,
	}

	p, err := newPoller(e, cfg)
	if err != nil {
		return nil, err
	}
	e.poller = p
	return e, nil
}

// Mode exposes the refresh-mode source the poller consults.
func (e *Engine) Mode() *ModeSource {
	return e.mode
}

// Lookup returns the snapshot for key, fetching through loader when
// the snapshot is stale. Disabled lookups return an empty snapshot
// without fetching or registering the key for polling. Concurrent
// lookups of a stale key (and a racing poll) share one fetch.
func (e *Engine) Lookup(ctx context.Context, key string, opts Options, loader Loader) Snapshot {
	if key == "" || opts.Disabled || loader == nil {
		return Snapshot{}
	}

	now := time.Now()
	e.mu.Lock()
	ent := e.entryLocked(key)
	ent.lastLookup = now
	ent.loader = loader
	ent.opts = opts
	if !ent.checkedAt.IsZero() && now.Sub(ent.checkedAt) < opts.FreshFor {
		snap := ent.snapshot()
		e.mu.Unlock()
		return snap
	}
	e.mu.Unlock()

	return e.fetchShared(ctx, key, ent, opts.FreshFor)
}

// fetchShared runs one fetch for key through the single-flight, so
// concurrent lookups and polls of the same key subscribe to the same
// backend call. A caller that raced a just-finished fetch takes the
// fresh snapshot instead of fetching again.
func (e *Engine) fetchShared(ctx context.Context, key string, ent *entry, freshFor time.Duration) Snapshot {
	v, _, _ := e.flight.Do(flightKey(key, ent.gen), func() (any, error) {
		e.mu.Lock()
		cur, ok := e.peekLocked(key)
		if !ok || cur != ent {
			e.mu.Unlock()
			return Snapshot{}, nil
		}
		if freshFor > 0 && !ent.checkedAt.IsZero() && time.Since(ent.checkedAt) < freshFor {
			snap := ent.snapshot()
			e.mu.Unlock()
			return snap, nil
		}
		ent.nextSeq++
		tag := ent.nextSeq
		ent.inflight = true
		loader := ent.loader
		e.mu.Unlock()

		data, err := loader(ctx)
		return e.commit(key, ent, tag, data, err), nil
	})

	snap, _ := v.(Snapshot)
	return snap
}

// commit lands a fetch result. Results from an entry that has been
// invalidated or evicted, or whose sequence is at or below the last
// accepted one, are discarded.
func (e *Engine) commit(key string, ent *entry, tag uint64, data any, err error) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur, ok := e.peekLocked(key)
	if !ok || cur != ent {
		if ok {
			return cur.snapshot()
		}
		return Snapshot{}
	}

	ent.inflight = false
	if tag <= ent.seq {
		return ent.snapshot()
	}

	ent.seq = tag
	ent.checkedAt = time.Now()
	if err != nil {
		ent.err = err
		if !ent.errLogged {
			ent.errLogged = true
			e.log.Warn("query fetch failed", "key", key, "error", err)
		}
		return ent.snapshot()
	}

	ent.data = data
	ent.err = nil
	ent.updatedAt = ent.checkedAt
	ent.errLogged = false
	return ent.snapshot()
}

// Invalidate drops a key's snapshot. An in-flight fetch for the key is
// orphaned; its result is discarded on arrival.
func (e *Engine) Invalidate(key string) {
	if key == "" {
		return
	}
	e.mu.Lock()
	e.entries.Remove(key)
	e.mu.Unlock()
}

// InvalidatePrefix drops every key beginning with prefix.
func (e *Engine) InvalidatePrefix(prefix string) {
	if prefix == "" {
		return
	}
	e.mu.Lock()
	for _, k := range e.entries.Keys() {
		key, _ := k.(string)
		if strings.HasPrefix(key, prefix) {
			e.entries.Remove(key)
		}
	}
	e.mu.Unlock()
}

// Close stops the poller and waits for scheduled refetches to finish.
func (e *Engine) Close() {
	if e.poller != nil {
		e.poller.stopAndWait()
	}
}

func (e *Engine) entryLocked(key string) *entry {
	if v, ok := e.entries.Get(key); ok {
		return v.(*entry)
	}
	e.gen++
	ent := &entry{gen: e.gen}
	e.entries.Add(key, ent)
	return ent
}

func (e *Engine) peekLocked(key string) (*entry, bool) {
	v, ok := e.entries.Peek(key)
	if !ok {
		return nil, false
	}
	ent, ok := v.(*entry)
	return ent, ok
}

func flightKey(key string, gen uint64) string {
	return key + "#" + strconv.FormatUint(gen, 10)
}

// Key builds a cache key from a query name and its parameters. Equal
// parameter lists canonicalize to equal keys.
func Key(name string, params ...any) string {
	if len(params) == 0 {
		return name
	}
	parts := make([]string, 0, len(params)+1)
	parts = append(parts, name)
	for _, p := range params {
		parts = append(parts, paramString(p))
	}
	return strings.Join(parts, ":")
}

func paramString(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case []int64:
		parts := make([]string, len(v))
		for i, id := range v {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
