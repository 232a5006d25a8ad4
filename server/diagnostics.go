package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// check statuses reported by diagnostics
const (
	checkOK      = "ok"
	checkError   = "error"
	checkSkipped = "skipped"
)

type diagCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

type diagFunc func(ctx context.Context) diagCheck

// diagnosticsHandler runs all checks in parallel against the live services.
// A skipped check is an unconfigured provider and does not fail the result.
func (s *Server) diagnosticsHandler(w http.ResponseWriter, r *http.Request) {
	checks := []diagFunc{s.checkDatabase, s.checkCandidates, s.checkQueue, s.checkConfig, s.checkVapi,
		s.checkTwilio, s.checkLLM}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	results := make([]diagCheck, len(checks))
	g := errgroup.Group{}
	g.SetLimit(4)
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	success := true
	for _, res := range results {
		if res.Status == checkError {
			success = false
		}
	}
	msg := "All services working correctly"
	if !success {
		msg = "Some services have issues"
	}
	renderJSON(w, r, http.StatusOK, map[string]any{
		"success": success,
		"message": msg,
		"results": map[string]any{"timestamp": time.Now().UTC(), "tests": results},
	})
}

func (s *Server) checkDatabase(ctx context.Context) diagCheck {
	if s.DB == nil {
		return diagCheck{Name: "Database", Status: checkSkipped, Details: "no database connection"}
	}
	if err := s.DB.Ping(ctx); err != nil {
		return diagCheck{Name: "Database", Status: checkError, Details: err.Error()}
	}
	return diagCheck{Name: "Database", Status: checkOK, Details: "connection alive"}
}

func (s *Server) checkCandidates(ctx context.Context) diagCheck {
	n, err := s.Candidates.CountCandidates(ctx)
	if err != nil {
		return diagCheck{Name: "Candidates", Status: checkError, Details: err.Error()}
	}
	return diagCheck{Name: "Candidates", Status: checkOK, Details: fmt.Sprintf("found %d candidates", n)}
}

func (s *Server) checkQueue(ctx context.Context) diagCheck {
	queue, err := s.Candidates.GetQueue(ctx)
	if err != nil {
		return diagCheck{Name: "Call queue", Status: checkError, Details: err.Error()}
	}
	return diagCheck{Name: "Call queue", Status: checkOK, Details: fmt.Sprintf("found %d candidates in queue", len(queue))}
}

func (s *Server) checkConfig(ctx context.Context) diagCheck {
	cfg, err := s.Configs.GetConfig(ctx)
	if err != nil {
		return diagCheck{Name: "Call config", Status: checkError, Details: err.Error()}
	}
	if cfg == nil {
		return diagCheck{Name: "Call config", Status: checkOK, Details: "no configuration set, default in use"}
	}
	return diagCheck{Name: "Call config", Status: checkOK, Details: fmt.Sprintf("configuration found, method %s", cfg.Method)}
}

func (s *Server) checkVapi(ctx context.Context) diagCheck {
	if !s.Vapi.Configured() {
		return diagCheck{Name: "Vapi", Status: checkSkipped, Details: "api key not set"}
	}
	assistants, err := s.Vapi.ListAssistants(ctx)
	if err != nil {
		return diagCheck{Name: "Vapi", Status: checkError, Details: err.Error()}
	}
	return diagCheck{Name: "Vapi", Status: checkOK, Details: fmt.Sprintf("found %d assistants", len(assistants))}
}

func (s *Server) checkTwilio(ctx context.Context) diagCheck {
	if !s.Twilio.CanLookup() {
		return diagCheck{Name: "Twilio", Status: checkSkipped, Details: "credentials not set"}
	}
	ids, err := s.Twilio.VerifiedCallerIDs(ctx)
	if err != nil {
		return diagCheck{Name: "Twilio", Status: checkError, Details: err.Error()}
	}
	details := fmt.Sprintf("found %d verified caller ids", len(ids))
	if !s.Twilio.Configured() {
		details += ", caller number not set"
	}
	return diagCheck{Name: "Twilio", Status: checkOK, Details: details}
}

func (s *Server) checkLLM(ctx context.Context) diagCheck {
	if s.LLM == nil || !s.LLM.Configured() {
		return diagCheck{Name: "LLM", Status: checkSkipped, Details: "model not set"}
	}
	info, err := s.LLM.Check(ctx)
	if err != nil {
		return diagCheck{Name: "LLM", Status: checkError, Details: err.Error()}
	}
	return diagCheck{Name: "LLM", Status: checkOK, Details: fmt.Sprintf("model %s available", info.ID)}
}
