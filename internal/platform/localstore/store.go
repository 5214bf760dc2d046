package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/fplpulse/fplpulse/internal/platform/logging"
)

// Store persists small view preferences (card order, theme) in one
// JSON file. Puts land in memory immediately and are flushed to disk
// after a debounce window, so a write never blocks the caller; Close
// flushes whatever is pending.
type Store struct {
	mu       sync.Mutex
	path     string
	debounce time.Duration
	log      *logging.Logger
	values   map[string]json.RawMessage
	dirty    bool
	timer    *time.Timer
	closed   bool
}

// Open loads the store file at path, creating parent directories as
// needed. A missing file starts empty; an unreadable one is discarded
// with a warning, matching how a browser store treats corrupt state.
func Open(path string, debounce time.Duration, logger *logging.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("local store path is required")
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	if logger == nil {
		logger = logging.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}

	s := &Store{
		path:     path,
		debounce: debounce,
		log:      logger,
		values:   make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read local store: %w", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := sonic.Unmarshal(raw, &s.values); err != nil {
		logger.Warn("local store file is corrupt, starting empty", "path", path, "error", err)
		s.values = make(map[string]json.RawMessage)
	}
	return s, nil
}

// Get unmarshals the stored value for key into out. The second return
// is false when the key is absent.
func (s *Store) Get(key string, out any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode local store key %q: %w", key, err)
	}
	return true, nil
}

// Put stores value under key and schedules a debounced flush.
func (s *Store) Put(key string, value any) error {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode local store key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("local store is closed")
	}
	s.values[key] = raw
	s.markDirtyLocked()
	return nil
}

// Delete removes key and schedules a debounced flush.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.markDirtyLocked()
}

func (s *Store) markDirtyLocked() {
	s.dirty = true
	if s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		if err := s.Flush(); err != nil {
			s.log.Warn("local store flush failed", "path", s.path, "error", err)
		}
	})
}

// Flush writes pending values to disk immediately.
func (s *Store) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	snapshot := make(map[string]json.RawMessage, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	s.dirty = false
	s.mu.Unlock()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(snapshot); err != nil {
		return fmt.Errorf("encode local store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write local store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local store: %w", err)
	}
	return nil
}

// Close flushes pending values and rejects further writes.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.Flush()
}
