package realtime

import (
	"testing"
	"time"

	"github.com/yashsuthar/termfolio/leaderboard"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroadcaster()

	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	if b.Count() != 2 {
		t.Fatalf("expected 2 subscribers, got %d", b.Count())
	}

	b.Unsubscribe(ch1)
	if b.Count() != 1 {
		t.Fatalf("expected 1 subscriber after unsubscribe, got %d", b.Count())
	}
	b.Unsubscribe(ch2)
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()
	defer b.Unsubscribe(ch1)
	defer b.Unsubscribe(ch2)

	b.PublishRecent([]leaderboard.Entry{{PlayerName: "Ann", Score: 50}})

	for i, ch := range []chan Message{ch1, ch2} {
		select {
		case m := <-ch:
			if m.Type != MessageRecentScores {
				t.Errorf("subscriber %d: type = %q", i, m.Type)
			}
			if len(m.Data) != 1 || m.Data[0].PlayerName != "Ann" {
				t.Errorf("subscriber %d: data = %+v", i, m.Data)
			}
			if m.Timestamp == 0 {
				t.Errorf("subscriber %d: zero timestamp", i)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: timed out", i)
		}
	}
}

func TestLateSubscriberGetsLatestSnapshots(t *testing.T) {
	b := NewBroadcaster()
	b.PublishRecent([]leaderboard.Entry{{PlayerName: "Ann", Score: 50}})
	b.PublishLeaderboard([]leaderboard.Entry{{PlayerName: "Ann", Score: 50, Rank: 1}})
	b.PublishRecent([]leaderboard.Entry{{PlayerName: "Bo", Score: 80}})

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	got := map[string]Message{}
	for i := 0; i < 2; i++ {
		select {
		case m := <-ch:
			got[m.Type] = m
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for replayed snapshots")
		}
	}
	recent, found := got[MessageRecentScores]
	if !found || recent.Data[0].PlayerName != "Bo" {
		t.Errorf("recent snapshot = %+v, want latest (Bo)", recent)
	}
	if _, found := got[MessageLeaderboard]; !found {
		t.Error("leaderboard snapshot not replayed")
	}
}

func TestPublishDropsForSlowConsumer(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Overfill the channel buffer (16); Publish must never block.
	for i := 0; i < 40; i++ {
		b.PublishRecent(nil)
	}

	count := 0
	for {
		select {
		case <-ch:
			count++
		default:
			if count != 16 {
				t.Errorf("expected 16 buffered messages, got %d", count)
			}
			return
		}
	}
}
