package termfolio

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestWithStackIdempotent(t *testing.T) {
	if WithStack(nil) != nil {
		t.Error("WithStack(nil) != nil")
	}
	base := errors.New("boom")
	wrapped := WithStack(base)
	if WithStack(wrapped) != wrapped {
		t.Error("double wrap added a second stack")
	}
	if StackTrace(wrapped) == "" {
		t.Error("no stack trace recorded")
	}
}

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	if v, found := m.GetHas("a"); !found || v != 1 {
		t.Errorf("GetHas(a) = %d, %v", v, found)
	}
	if m.Get("missing") != 0 {
		t.Error("Get(missing) not zero value")
	}
	if !m.Has("b") || m.Len() != 2 {
		t.Errorf("Has/Len = %v/%d", m.Has("b"), m.Len())
	}
	m.Del("a")
	if m.Has("a") {
		t.Error("Del left the key")
	}
	clone := m.Clone()
	m.Set("c", 3)
	if len(clone) != 1 {
		t.Errorf("clone = %v", clone)
	}
}

func TestIncrementIsUniqueAndIncreasing(t *testing.T) {
	var stamp uint64
	seen := NewSyncMap[uint64, bool]()
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := uint64(0)
			for j := 0; j < 100; j++ {
				next := Increment(&stamp)
				if next <= prev {
					t.Errorf("%d not after %d", next, prev)
					return
				}
				if seen.Has(next) {
					t.Errorf("duplicate timestamp %d", next)
					return
				}
				seen.Set(next, true)
				prev = next
			}
		}()
	}
	wg.Wait()
}
