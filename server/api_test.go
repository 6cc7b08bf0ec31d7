package server

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/yashsuthar/termfolio"
	"github.com/yashsuthar/termfolio/leaderboard"
	"github.com/yashsuthar/termfolio/realtime"
	"github.com/yashsuthar/termfolio/vfs"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return &Server{
		board:    leaderboard.NewService(nil),
		caster:   realtime.NewBroadcaster(),
		fsys:     vfs.Portfolio(),
		sessions: termfolio.NewSyncMap[string, bool](),
	}
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSubmitAndReadLeaderboard(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	for _, body := range []string{
		`{"playerName":"Ann","score":50}`,
		`{"playerName":"Bo","score":80}`,
	} {
		rec := postJSON(t, handler, "/api/leaderboard", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("POST status = %d, body %s", rec.Code, rec.Body)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?limit=10", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}
	var resp struct {
		Scores []leaderboard.Entry `json:"scores"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Scores) != 2 || resp.Scores[0].PlayerName != "Bo" || resp.Scores[0].Rank != 1 {
		t.Errorf("scores = %+v", resp.Scores)
	}
}

func TestSubmitRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	tests := []string{
		`not json`,
		`{"playerName":"","score":10}`,
		`{"playerName":"Ann"}`,
		`{"score":10}`,
		`{"playerName":"Ann","score":-5}`,
	}
	for _, body := range tests {
		for _, path := range []string{"/api/leaderboard", "/api/realtime-scores"} {
			rec := postJSON(t, handler, path, body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("POST %s %q status = %d, want 400", path, body, rec.Code)
			}
		}
	}
}

func TestSubmitAcceptsZeroScore(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.Handler(), "/api/leaderboard", `{"playerName":"Ann","score":0}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestPlayerStats(t *testing.T) {
	s := newTestServer(t)
	handler := s.Handler()

	postJSON(t, handler, "/api/leaderboard", `{"playerName":"Ann","score":50}`)
	postJSON(t, handler, "/api/leaderboard", `{"playerName":"Ann","score":90}`)

	req := httptest.NewRequest(http.MethodGet, "/api/player-stats?playerName=Ann", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Stats *leaderboard.PlayerStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Stats == nil || resp.Stats.BestScore != 90 || resp.Stats.GamesCount != 2 {
		t.Errorf("stats = %+v", resp.Stats)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/player-stats?playerName=nobody", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown player status = %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Stats != nil {
		t.Errorf("unknown player stats = %+v, want null", resp.Stats)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/player-stats", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", rec.Code)
	}
}

func TestScoreStreamDeliversUpdates(t *testing.T) {
	s := newTestServer(t)
	httpServer := httptest.NewServer(s.Handler())
	defer httpServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpServer.URL+"/api/realtime-scores", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	readMessage := func() realtime.Message {
		t.Helper()
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var m realtime.Message
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &m); err != nil {
				t.Fatal(err)
			}
			return m
		}
		t.Fatal("stream ended early")
		return realtime.Message{}
	}

	// The initial snapshot arrives before any submission.
	first := readMessage()
	if first.Type != realtime.MessageRecentScores {
		t.Fatalf("first message type = %q", first.Type)
	}
	if len(first.Data) != 0 {
		t.Fatalf("first snapshot = %+v, want empty", first.Data)
	}

	rec := postJSON(t, s.Handler(), "/api/realtime-scores", `{"playerName":"Ann","score":50}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST status = %d", rec.Code)
	}

	sawAnn := false
	for i := 0; i < 2 && !sawAnn; i++ {
		m := readMessage()
		for _, entry := range m.Data {
			if entry.PlayerName == "Ann" && entry.Score == 50 {
				sawAnn = true
			}
		}
	}
	if !sawAnn {
		t.Error("update for Ann never arrived")
	}
}
