package localstore

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestStore_PutGetRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := Open(path, time.Minute, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	order := []string{"overall-rank", "chips", "gw-points"}
	if err := store.Put("bento_card_order", order); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var got []string
	ok, err := store.Get("bento_card_order", &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, order) {
		t.Fatalf("Get = %v, want %v", got, order)
	}

	var missing string
	if ok, err := store.Get("theme", &missing); ok || err != nil {
		t.Fatalf("absent key: ok=%v err=%v", ok, err)
	}
}

func TestStore_DebouncedFlushLandsOnDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := Open(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if err := store.Put("theme", "dark"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("flush should not happen before the debounce window")
	}

	time.Sleep(80 * time.Millisecond)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("debounced flush never landed: %v", err)
	}
}

func TestStore_CloseFlushesAndReopens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	store, err := Open(path, time.Hour, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := store.Put("theme", "light"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := store.Put("theme", "dark"); err == nil {
		t.Fatal("Put after Close should fail")
	}

	reopened, err := Open(path, time.Hour, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	var theme string
	ok, err := reopened.Get("theme", &theme)
	if err != nil || !ok || theme != "light" {
		t.Fatalf("reopened Get = %q ok=%v err=%v, want light", theme, ok, err)
	}
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store, err := Open(path, time.Minute, nil)
	if err != nil {
		t.Fatalf("Open should tolerate a corrupt file: %v", err)
	}
	defer store.Close()

	var theme string
	if ok, _ := store.Get("theme", &theme); ok {
		t.Fatal("corrupt store should start empty")
	}
}
