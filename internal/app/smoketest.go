package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/usedari/dari-go/internal/config"
	"github.com/usedari/dari-go/pkg/dari"
)

// SmokeTest exercises the session-management surface of the Dari API end to
// end: create, get, list, update, run a single action, terminate. Step
// failures after session creation are logged and the run continues, since a
// live workspace may legitimately reject individual steps.
type SmokeTest struct {
	cfg    *config.Config
	client *dari.Client
	log    *zap.SugaredLogger
	runID  string
}

// NewSmokeTest builds the smoke-test runtime from config.
func NewSmokeTest(cfg *config.Config, log *zap.SugaredLogger) (*SmokeTest, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	opts := []dari.Option{dari.WithTimeout(cfg.RequestTimeout)}
	if cfg.BaseURL != "" {
		opts = append(opts, dari.WithBaseURL(cfg.BaseURL))
	}
	client, err := dari.New(cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("init dari client: %w", err)
	}

	return &SmokeTest{
		cfg:    cfg,
		client: client,
		log:    log,
		runID:  uuid.NewString(),
	}, nil
}

// Run executes the smoke sequence. A failed session create aborts the run;
// later step failures are logged and skipped.
func (s *SmokeTest) Run(ctx context.Context) error {
	defer s.client.Close()

	s.log.Infow("smoke run starting", "run_id", s.runID)

	session, err := s.client.CreateSession(ctx, &dari.CreateSessionOptions{
		ScreenConfig: map[string]any{"width": 1280, "height": 720},
		TTL:          dari.Int(3600),
		Metadata:     map[string]any{"smoke_run_id": s.runID},
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	sessionID, _ := session["session_id"].(string)
	if sessionID == "" {
		return fmt.Errorf("create session: response carries no session_id")
	}
	s.log.Infow("session created", "session_id", sessionID, "status", session["status"])

	if details, err := s.client.GetSession(ctx, sessionID); err != nil {
		s.log.Warnw("get session failed", "session_id", sessionID, "error", err)
	} else {
		s.log.Infow("session retrieved", "session_id", sessionID, "status", details["status"])
	}

	if listed, err := s.client.ListSessions(ctx, &dari.ListSessionsOptions{
		StatusFilter: dari.String("active"),
		Limit:        dari.Int(10),
	}); err != nil {
		s.log.Warnw("list sessions failed", "error", err)
	} else {
		s.log.Infow("sessions listed", "total", listed["total"])
	}

	if updated, err := s.client.UpdateSession(ctx, sessionID, &dari.UpdateSessionOptions{
		TTL:      dari.Int(7200),
		Metadata: map[string]any{"smoke_run_id": s.runID, "updated": true},
	}); err != nil {
		s.log.Warnw("update session failed", "session_id", sessionID, "error", err)
	} else {
		s.log.Infow("session updated", "session_id", sessionID, "expires_at", updated["expires_at"])
	}

	// Tolerated failure: the session may not have a browser attached yet.
	if result, err := s.client.RunSingleAction(ctx, "What is on the screen?",
		&dari.RunSingleActionOptions{SessionID: dari.String(sessionID)}); err != nil {
		s.log.Warnw("single action skipped", "session_id", sessionID, "error", err)
	} else {
		s.log.Infow("single action executed", "success", result["success"])
	}

	if err := s.client.TerminateSession(ctx, sessionID); err != nil {
		s.log.Warnw("terminate session failed", "session_id", sessionID, "error", err)
	} else {
		s.log.Infow("session terminated", "session_id", sessionID)
	}

	s.log.Infow("smoke run complete", "run_id", s.runID)
	return nil
}
