// Package server ties the terminal, leaderboard and event stream
// together behind SSH and HTTP listeners.
package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/yashsuthar/termfolio"
	"github.com/yashsuthar/termfolio/leaderboard"
	"github.com/yashsuthar/termfolio/pemfile"
	"github.com/yashsuthar/termfolio/realtime"
	"github.com/yashsuthar/termfolio/vfs"
)

type Server struct {
	config   Config
	board    *leaderboard.Service
	caster   *realtime.Broadcaster
	fsys     vfs.Dir
	store    *leaderboard.SQLStore
	hostKey  []byte
	sessions *termfolio.SyncMap[string, bool]
}

func New(config Config) (*Server, error) {
	if err := os.MkdirAll(config.Dir, 0700); err != nil {
		return nil, termfolio.WithStack(err)
	}

	hostKey, err := pemfile.EnsureKeyPair(config.PrivateKeyPath(), config.PublicKeyPath())
	if err != nil {
		return nil, err
	}

	store, err := leaderboard.OpenSQLStore(config.DBPath())
	if err != nil {
		return nil, err
	}

	return &Server{
		config:   config,
		board:    leaderboard.NewService(store),
		caster:   realtime.NewBroadcaster(),
		fsys:     vfs.Portfolio(),
		store:    store,
		hostKey:  hostKey,
		sessions: termfolio.NewSyncMap[string, bool](),
	}, nil
}

// Start runs the HTTP and SSH listeners until either fails or the
// context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	signer, err := gossh.ParsePrivateKey(s.hostKey)
	if err != nil {
		return termfolio.WithStack(err)
	}

	httpServer := &http.Server{
		Addr:    s.config.HTTPAddr,
		Handler: s.Handler(),
	}
	sshServer := &ssh.Server{
		Addr:    s.config.SSHAddr,
		Handler: s.HandleSession,
	}
	sshServer.AddHostKey(signer)

	errs := make(chan error, 2)
	go func() {
		log.Printf("HTTP listening on %q", s.config.HTTPAddr)
		errs <- termfolio.WithStack(httpServer.ListenAndServe())
	}()
	go func() {
		log.Printf("SSH listening on %q with public key %q", s.config.SSHAddr, gossh.FingerprintSHA256(signer.PublicKey()))
		errs <- termfolio.WithStack(sshServer.ListenAndServe())
	}()

	select {
	case err := <-errs:
		httpServer.Close()
		sshServer.Close()
		return err
	case <-ctx.Done():
		httpServer.Close()
		sshServer.Close()
		s.store.Close()
		return termfolio.WithStack(ctx.Err())
	}
}

// publishScores pushes fresh recent and top views to every subscriber.
// Called after each accepted submission.
func (s *Server) publishScores(ctx context.Context) {
	if recent, err := s.board.Recent(ctx); err == nil {
		s.caster.PublishRecent(recent)
	} else {
		log.Printf("publishing recent scores: %v", err)
	}
	if top, err := s.board.TopN(ctx, leaderboard.DefaultTopN); err == nil {
		s.caster.PublishLeaderboard(top)
	} else {
		log.Printf("publishing leaderboard: %v", err)
	}
}
