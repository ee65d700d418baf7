package locations

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestAddDeduplicates(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	if !s.Add("Colombo") {
		t.Fatalf("first add should change the list")
	}
	if s.Add("Colombo") {
		t.Fatalf("second add of the same name should be a no-op")
	}
	// Exact-match de-duplication is case-sensitive.
	if !s.Add("colombo") {
		t.Fatalf("differently cased name is a distinct entry")
	}

	got := s.List()
	want := []string{"Colombo", "colombo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	for _, name := range []string{"Colombo", "Paris", "Tokyo"} {
		s.Add(name)
	}

	if !s.Remove("Paris") {
		t.Fatalf("remove of an existing name should change the list")
	}
	if s.Remove("Paris") {
		t.Fatalf("removing an absent name should be a no-op")
	}

	got := s.List()
	want := []string{"Colombo", "Tokyo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestHydrateFromEmptyBackend(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	if got := s.List(); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestHydrateCorruptPayloadFailsSoft(t *testing.T) {
	backend := NewMemoryBackend()
	if err := backend.Save([]byte(`{not valid json`)); err != nil {
		t.Fatalf("seed backend: %v", err)
	}

	s := NewStore(backend)
	if got := s.List(); len(got) != 0 {
		t.Fatalf("corrupt payload should hydrate to empty list, got %v", got)
	}

	// The store must still be usable after a corrupt hydrate.
	if !s.Add("Colombo") {
		t.Fatalf("add after corrupt hydrate failed")
	}
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_locations.json")

	s := NewStore(NewFileBackend(path))
	s.Add("Colombo")
	s.Add("Paris")

	// A fresh store over the same file sees the persisted list.
	reloaded := NewStore(NewFileBackend(path))
	got := reloaded.List()
	want := []string{"Colombo", "Paris"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v after reload, got %v", want, got)
	}
}

func TestFileBackendMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	data, err := NewFileBackend(path).Load()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if data != nil {
		t.Fatalf("missing file should load nil data, got %q", data)
	}
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.db")

	backend, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("NewSQLiteBackend failed: %v", err)
	}
	defer backend.Close()

	if data, err := backend.Load(); err != nil || data != nil {
		t.Fatalf("fresh db should load nil data, got %q err %v", data, err)
	}

	s := NewStore(backend)
	s.Add("Colombo")
	s.Remove("Colombo")
	s.Add("Tokyo")

	reloaded := NewStore(backend)
	got := reloaded.List()
	want := []string{"Tokyo"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v after reload, got %v", want, got)
	}
}
