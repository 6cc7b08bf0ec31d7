package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/yashsuthar/termfolio/leaderboard"
	"github.com/yashsuthar/termfolio/realtime"
)

type submitRequest struct {
	PlayerName string `json:"playerName"`
	Score      *int   `json:"score"`
}

// Handler returns the HTTP API: leaderboard reads and writes, player
// stats, and the SSE score stream.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("/api/player-stats", s.handlePlayerStats)
	mux.HandleFunc("/api/realtime-scores", s.handleRealtimeScores)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit := leaderboard.DefaultTopN
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid data"})
				return
			}
			limit = parsed
		}
		top, err := s.board.TopN(r.Context(), limit)
		if err != nil {
			log.Printf("reading leaderboard: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"scores": []leaderboard.Entry{}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"scores": top})

	case http.MethodPost:
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerName == "" || req.Score == nil || *req.Score < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid data"})
			return
		}
		if _, err := s.board.Submit(r.Context(), req.PlayerName, *req.Score); err != nil {
			log.Printf("submitting score: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
			return
		}
		s.publishScores(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := r.URL.Query().Get("playerName")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Player name required"})
		return
	}
	stats, err := s.board.StatsFor(r.Context(), name)
	if errors.Is(err, leaderboard.ErrNoSuchPlayer) {
		writeJSON(w, http.StatusOK, map[string]any{"stats": nil})
		return
	} else if err != nil {
		log.Printf("reading player stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"stats": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats})
}

func (s *Server) handleRealtimeScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.streamScores(w, r)

	case http.MethodPost:
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerName == "" || req.Score == nil || *req.Score < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid data"})
			return
		}
		if _, err := s.board.Submit(r.Context(), req.PlayerName, *req.Score); err != nil {
			log.Printf("submitting score: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to process score"})
			return
		}
		s.publishScores(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) streamScores(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := s.caster.Subscribe()
	defer s.caster.Unsubscribe(ch)

	// If nothing has been published yet there is no snapshot to replay,
	// so send the current recent view directly. A fresh subscriber never
	// starts blank.
	if len(ch) == 0 {
		if recent, err := s.board.Recent(r.Context()); err == nil {
			m := realtime.Message{Type: realtime.MessageRecentScores, Data: recent}
			if payload, err := m.Marshal(); err == nil {
				fmt.Fprintf(w, "data: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case m, open := <-ch:
			if !open {
				return
			}
			payload, err := m.Marshal()
			if err != nil {
				log.Printf("encoding event: %v", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
