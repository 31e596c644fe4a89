package dombind

import (
	"testing"

	"go.uber.org/zap"

	"github.com/davral/dombind/internal/core"
	"github.com/davral/dombind/internal/enginetest"
)

// testObject returns a fresh engine object without going through the
// binder, for cache-level tests.
func testObject(t *testing.T, host *enginetest.Host) core.Object {
	t.Helper()
	tmpl, err := host.NewTemplate("Node", 1, nil)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	o, err := host.Instantiate(tmpl)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	return o
}

func TestWrapperCacheSetGet(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())
	o := testObject(t, host)

	if c.Has(7) {
		t.Fatal("empty cache reports Has(7)")
	}
	c.Set(7, o, nil)
	if !c.Has(7) {
		t.Fatal("Has(7) false after Set")
	}
	got, ok := c.Get(7)
	if !ok || got != o {
		t.Fatalf("Get(7) = %v, %v; want the registered object", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestWrapperCacheDuplicateSetPanics(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())
	c.Set(7, testObject(t, host), nil)

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate Set did not panic")
		}
	}()
	c.Set(7, testObject(t, host), nil)
}

// TestWrapperCacheSetNeverReleases pins the side-effect discipline: Set
// must not invoke the release callback it is handed.
func TestWrapperCacheSetNeverReleases(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())

	released := 0
	c.Set(7, testObject(t, host), func(core.Handle) { released++ })
	if released != 0 {
		t.Fatalf("Set invoked the release callback %d times", released)
	}
}

func TestWrapperCacheReclaim(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())
	o := testObject(t, host)

	var releasedHandles []core.Handle
	c.Set(7, o, func(h core.Handle) { releasedHandles = append(releasedHandles, h) })

	c.OnReclaim(o)
	if len(releasedHandles) != 1 || releasedHandles[0] != 7 {
		t.Fatalf("release calls = %v, want [7]", releasedHandles)
	}
	if c.Has(7) {
		t.Error("entry still present after reclaim")
	}

	// A duplicate notification for the same object must be a no-op.
	c.OnReclaim(o)
	if len(releasedHandles) != 1 {
		t.Fatalf("double reclaim released %d times, want 1", len(releasedHandles))
	}
}

func TestWrapperCacheReclaimUnknownObject(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())

	// Must not panic or touch anything.
	c.OnReclaim(testObject(t, host))
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

// TestWrapperCacheStaleReclaimAfterRewrap delivers a late notification
// for an already-reclaimed wrapper after its handle has been wrapped
// again; the new entry must survive untouched.
func TestWrapperCacheStaleReclaimAfterRewrap(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())

	old := testObject(t, host)
	releases := 0
	c.Set(7, old, func(core.Handle) { releases++ })
	c.OnReclaim(old)

	fresh := testObject(t, host)
	c.Set(7, fresh, func(core.Handle) { releases++ })

	// Stale notification for the old object.
	c.OnReclaim(old)

	if releases != 1 {
		t.Fatalf("releases = %d, want 1", releases)
	}
	got, ok := c.Get(7)
	if !ok || got != fresh {
		t.Fatal("stale reclaim disturbed the fresh entry")
	}
}

func TestWrapperCacheClearReleasesOnce(t *testing.T) {
	host := enginetest.New()
	c := newWrapperCache(zap.NewNop())

	releases := make(map[core.Handle]int)
	for h := core.Handle(1); h <= 3; h++ {
		c.Set(h, testObject(t, host), func(h core.Handle) { releases[h]++ })
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	for h := core.Handle(1); h <= 3; h++ {
		if releases[h] != 1 {
			t.Errorf("handle %d released %d times, want 1", h, releases[h])
		}
	}

	// Clearing again must not re-release.
	c.Clear()
	for h := core.Handle(1); h <= 3; h++ {
		if releases[h] != 1 {
			t.Errorf("after second Clear: handle %d released %d times, want 1", h, releases[h])
		}
	}
}
