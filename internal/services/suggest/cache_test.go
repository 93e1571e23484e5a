package suggest

import (
	"fmt"
	"reflect"
	"testing"
)

func TestCacheLookupMiss(t *testing.T) {
	c := NewCache()
	defer c.Close()

	if _, ok := c.Lookup("never stored"); ok {
		t.Error("Expected a miss for an unknown key")
	}
}

func TestCacheStoreAndLookup(t *testing.T) {
	c := NewCache()
	defer c.Close()

	suggestions := []string{"foo()", "bar()"}
	c.Store("prefix", suggestions)

	got, ok := c.Lookup("prefix")
	if !ok {
		t.Fatal("Expected a hit after store")
	}
	if !reflect.DeepEqual(got, suggestions) {
		t.Errorf("Lookup() = %v, want %v", got, suggestions)
	}
}

func TestCacheKeysAreWhitespaceSensitive(t *testing.T) {
	c := NewCache()
	defer c.Close()

	c.Store("foo ", []string{"a"})

	if _, ok := c.Lookup("foo"); ok {
		t.Error("Keys must not be normalized")
	}
}

func TestCacheLastStoreWins(t *testing.T) {
	c := NewCache()
	defer c.Close()

	c.Store("key", []string{"old"})
	c.Store("key", []string{"new"})

	got, _ := c.Lookup("key")
	if !reflect.DeepEqual(got, []string{"new"}) {
		t.Errorf("Lookup() = %v, want the later store", got)
	}
}

func TestCacheCapacityIsBounded(t *testing.T) {
	c := NewCache()
	defer c.Close()

	for i := 0; i < cacheCapacity+50; i++ {
		c.Store(fmt.Sprintf("key-%d", i), []string{"v"})
	}

	if c.Len() > cacheCapacity {
		t.Errorf("Cache grew past its capacity: %d > %d", c.Len(), cacheCapacity)
	}
}
