package shell

import (
	"testing"
	"time"
)

func TestEffectSchedulerOrdersByFiringTime(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	sched := NewEffectScheduler(clock.Now)

	sched.Schedule(5*time.Second, EffectMatrixOff)
	sched.Schedule(0, EffectMatrixOn)
	sched.Schedule(time.Second, EffectExit)

	if sched.Pending() != 3 {
		t.Fatalf("pending = %d", sched.Pending())
	}
	next, pending := sched.Next()
	if !pending || !next.Equal(clock.Now()) {
		t.Errorf("next = %v, %v", next, pending)
	}

	due := sched.Due()
	if len(due) != 1 || due[0].Kind != EffectMatrixOn {
		t.Fatalf("due = %+v", due)
	}

	clock.Advance(5 * time.Second)
	due = sched.Due()
	if len(due) != 2 || due[0].Kind != EffectExit || due[1].Kind != EffectMatrixOff {
		t.Errorf("due = %+v, want exit then matrix off", due)
	}
	if sched.Pending() != 0 {
		t.Errorf("pending = %d, want 0", sched.Pending())
	}
}

func TestCancelRemovesEarliestOfKind(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	sched := NewEffectScheduler(clock.Now)

	sched.Schedule(time.Second, EffectMatrixOff)
	sched.Schedule(2*time.Second, EffectExit)

	if !sched.Cancel(EffectMatrixOff) {
		t.Fatal("Cancel found nothing")
	}
	if sched.Cancel(EffectMatrixOff) {
		t.Error("Cancel removed a second matrix off")
	}
	clock.Advance(2 * time.Second)
	due := sched.Due()
	if len(due) != 1 || due[0].Kind != EffectExit {
		t.Errorf("due = %+v, want only exit", due)
	}
}

func TestDueWithNothingScheduled(t *testing.T) {
	sched := NewEffectScheduler(time.Now)
	if due := sched.Due(); due != nil {
		t.Errorf("due = %+v", due)
	}
	if _, pending := sched.Next(); pending {
		t.Error("pending with empty scheduler")
	}
}
