package realtime

import (
	"bufio"
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/yashsuthar/termfolio"
)

const maxConnectAttempts = 3

// Client consumes the score event stream. A dropped stream is retried
// with the bounded backoff schedule; a healthy connection resets the
// budget. After three consecutive failed attempts it gives up silently;
// live updates are a nicety, not a requirement, and the terminal keeps
// working without them.
type Client struct {
	url        string
	httpClient *http.Client
	attemptGap func(attempt int) time.Duration
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 0, // the stream stays open indefinitely
		},
		attemptGap: func(attempt int) time.Duration {
			return time.Duration(attempt) * 2 * time.Second
		},
	}
}

// Subscribe connects to the SSE endpoint and returns a channel of
// messages. The channel closes when the context is cancelled or the
// client gives up reconnecting.
func (c *Client) Subscribe(ctx context.Context) <-chan Message {
	messages := make(chan Message, 16)
	go c.subscribeLoop(ctx, messages)
	return messages
}

func (c *Client) subscribeLoop(ctx context.Context, messages chan<- Message) {
	defer close(messages)

	attempt := 0
	for {
		connected, err := c.connect(ctx, messages)
		if err == nil || ctx.Err() != nil {
			return
		}
		if connected {
			// A drop after a healthy connection starts a fresh budget.
			attempt = 0
		}
		attempt++
		if attempt == maxConnectAttempts {
			log.Printf("realtime: giving up after %d attempts: %v", attempt, err)
			return
		}
		gap := c.attemptGap(attempt)
		log.Printf("realtime: connection lost, retrying in %s: %v", gap, err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(gap):
		}
	}
}

// connect holds one stream open until it ends. The connected result
// reports whether the server ever accepted the stream; a clean
// end-of-stream is still an error (io.EOF) so the caller reconnects.
func (c *Client) connect(ctx context.Context, messages chan<- Message) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false, termfolio.WithStack(err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, termfolio.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, termfolio.WithStack(errors.Errorf("server returned %d", resp.StatusCode))
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var m Message
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &m); err != nil {
			log.Printf("realtime: dropping malformed message: %v", err)
			continue
		}
		select {
		case <-ctx.Done():
			return true, nil
		case messages <- m:
		}
	}
	if ctx.Err() != nil {
		return true, nil
	}
	if err := scanner.Err(); err != nil {
		return true, termfolio.WithStack(err)
	}
	return true, termfolio.WithStack(io.EOF)
}
