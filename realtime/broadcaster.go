// Package realtime fans leaderboard changes out to connected terminals
// over Server-Sent Events.
package realtime

import (
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/yashsuthar/termfolio/leaderboard"
)

const (
	MessageRecentScores = "recent_scores_updated"
	MessageLeaderboard  = "leaderboard_updated"
)

// Message is one SSE payload: a wholesale replacement of the named view,
// never a delta.
type Message struct {
	Type      string              `json:"type"`
	Data      []leaderboard.Entry `json:"data"`
	Timestamp int64               `json:"timestamp"`
}

func (m Message) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// Broadcaster manages SSE subscribers and publishes score updates. It
// remembers the latest message per type and replays them to new
// subscribers so a terminal that connects between games still sees
// current data.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[chan Message]struct{}
	latest      map[string]Message
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan Message]struct{}),
		latest:      make(map[string]Message),
	}
}

// Subscribe adds a subscriber and returns its channel, pre-loaded with
// the latest known snapshots. The caller must call Unsubscribe when done.
func (b *Broadcaster) Subscribe() chan Message {
	ch := make(chan Message, 16)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	for _, m := range b.latest {
		ch <- m
	}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (b *Broadcaster) Unsubscribe(ch chan Message) {
	b.mu.Lock()
	delete(b.subscribers, ch)
	close(ch)
	b.mu.Unlock()
}

// Publish sends a message to all subscribers. Non-blocking: drops the
// message for slow consumers, who will catch up on their next connect.
func (b *Broadcaster) Publish(m Message) {
	if m.Timestamp == 0 {
		m.Timestamp = time.Now().UnixNano()
	}
	b.mu.Lock()
	b.latest[m.Type] = m
	for ch := range b.subscribers {
		select {
		case ch <- m:
		default:
		}
	}
	b.mu.Unlock()
}

// PublishRecent publishes the latest-submissions feed.
func (b *Broadcaster) PublishRecent(recent []leaderboard.Entry) {
	b.Publish(Message{Type: MessageRecentScores, Data: recent})
}

// PublishLeaderboard publishes the collapsed top-N view.
func (b *Broadcaster) PublishLeaderboard(top []leaderboard.Entry) {
	b.Publish(Message{Type: MessageLeaderboard, Data: top})
}

// Count returns the current number of subscribers.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
