package cache

import (
	"errors"
	"testing"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1, 10)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) found a missing key")
	}

	c.Set("a", 2, 4)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("Get(a) after replace = %d, want 2", v)
	}
	if c.Used() != 4 || c.Len() != 1 {
		t.Errorf("Used() = %d, Len() = %d, want 4, 1", c.Used(), c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](30)
	var evicted []string
	c.OnEvict(func(k string, _ int) { evicted = append(evicted, k) })

	c.Set("a", 1, 10)
	c.Set("b", 2, 10)
	c.Set("c", 3, 10)
	c.Get("a") // b is now the oldest
	c.Set("d", 4, 10)

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s evicted", k)
		}
	}
	if len(evicted) != 1 || evicted[0] != "b" {
		t.Errorf("evicted = %v, want [b]", evicted)
	}
	if c.Used() != 30 {
		t.Errorf("Used() = %d, want 30", c.Used())
	}
}

func TestOversizedEntryNotStored(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1, 5)
	c.Set("big", 2, 11)

	if _, ok := c.Get("big"); ok {
		t.Error("entry larger than budget stored")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("oversized entry evicted existing entries")
	}
}

func TestGetOrCreate(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() (string, int, error) {
		calls++
		return "v", 1, nil
	}

	for range 3 {
		v, err := c.GetOrCreate(1, create)
		if err != nil || v != "v" {
			t.Fatalf("GetOrCreate = (%q, %v)", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	errBoom := errors.New("boom")
	if _, err := c.GetOrCreate(2, func() (string, int, error) { return "", 0, errBoom }); !errors.Is(err, errBoom) {
		t.Errorf("GetOrCreate error = %v, want boom", err)
	}
	if _, ok := c.Get(2); ok {
		t.Error("failed create was cached")
	}
}

func TestDeleteClear(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1, 3)
	c.Set("b", 2, 3)

	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete did not report presence correctly")
	}
	if c.Used() != 3 {
		t.Errorf("Used() = %d after delete, want 3", c.Used())
	}

	c.Clear()
	if c.Len() != 0 || c.Used() != 0 {
		t.Errorf("after Clear: Len() = %d, Used() = %d", c.Len(), c.Used())
	}
	c.Set("c", 3, 1)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestDeleteFunc(t *testing.T) {
	c := New[string, int](0)
	for i, k := range []string{"logo/10", "logo/20", "icon/10"} {
		c.Set(k, i, 2)
	}

	n := c.DeleteFunc(func(k string) bool { return k[:4] == "logo" })
	if n != 2 {
		t.Errorf("DeleteFunc removed %d, want 2", n)
	}
	if c.Len() != 1 || c.Used() != 2 {
		t.Errorf("Len() = %d, Used() = %d, want 1, 2", c.Len(), c.Used())
	}
	if _, ok := c.Get("icon/10"); !ok {
		t.Error("unmatched key was removed")
	}
}
