package cache

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestKeyIgnoresOrder(t *testing.T) {
	a := Key(PropertyPrefix, url.Values{"category": {"Villa"}, "q": {"bali", "ubud"}})
	b := Key(PropertyPrefix, url.Values{"q": {"ubud", "bali"}, "category": {"Villa"}})
	if a != b {
		t.Errorf("keys differ: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, PropertyPrefix) {
		t.Errorf("key %q lacks prefix", a)
	}
}

func TestKeyDistinguishesQueries(t *testing.T) {
	a := Key(PropertyPrefix, url.Values{"category": {"Villa"}})
	b := Key(PropertyPrefix, url.Values{"category": {"Cabin"}})
	if a == b {
		t.Error("different queries produced the same key")
	}
}

func TestKeyDoesNotReorderCallerValues(t *testing.T) {
	q := url.Values{"q": {"b", "a"}}
	_ = Key(PropertyPrefix, q)
	if q["q"][0] != "b" {
		t.Errorf("caller values reordered: %v", q["q"])
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore()
	m.now = func() time.Time { return now }
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, ok, _ := m.Get(ctx, "k"); !ok || string(got) != "v" {
		t.Fatalf("Get before expiry: got (%q, %v)", got, ok)
	}

	now = now.Add(time.Minute)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("Get after expiry: got hit, want miss")
	}
}

func TestMemoryStoreDeletePrefix(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	_ = m.Set(ctx, PropertyPrefix+"a", []byte("1"), 0)
	_ = m.Set(ctx, PropertyPrefix+"b", []byte("2"), 0)
	_ = m.Set(ctx, "other", []byte("3"), 0)

	n, err := m.DeletePrefix(ctx, PropertyPrefix)
	if err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted: got %d, want 2", n)
	}
	if _, ok, _ := m.Get(ctx, "other"); !ok {
		t.Error("unrelated key was deleted")
	}
}
