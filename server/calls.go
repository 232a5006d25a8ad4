package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/repository"
)

// listCallsHandler returns the call queue, or the call history with type=history
func (s *Server) listCallsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Query().Get("type") == "history" {
		history, err := s.Candidates.GetHistory(ctx)
		if err != nil {
			log.Printf("[ERROR] failed to get call history: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"calls": history})
		return
	}

	queue, err := s.Candidates.GetQueue(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to get call queue: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"queue": queue, "total": len(queue)})
}

type callsAction struct {
	Action      string             `json:"action"`
	Candidates  []domain.Candidate `json:"candidates"`
	CandidateID int64              `json:"candidateId"`
	CallResult  string             `json:"callResult"`
	CallNotes   string             `json:"callNotes"`
}

// callsActionHandler manages the call queue: add_to_queue, start_call, end_call and clear_queue
func (s *Server) callsActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req callsAction
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if (req.Action == "start_call" || req.Action == "end_call") && req.CandidateID <= 0 {
		renderError(w, r, errors.New("candidate id is required"), http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "add_to_queue":
		if req.Candidates == nil {
			renderError(w, r, errors.New("candidates must be an array"), http.StatusBadRequest)
			return
		}
		added, err := s.Candidates.AddToQueue(ctx, sanitizeCandidates(req.Candidates))
		if err != nil {
			log.Printf("[ERROR] failed to add candidates to queue: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		queue, err := s.Candidates.GetQueue(ctx)
		if err != nil {
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "candidates": added,
			"message": fmt.Sprintf("Added %d candidates to call queue", len(added)), "queueLength": len(queue)})

	case "start_call":
		c, err := s.queuedCandidate(r, req.CandidateID)
		if err != nil {
			renderError(w, r, err, errorStatus(err))
			return
		}
		if err = s.Candidates.UpdateStatus(ctx, c.ID, domain.StatusCalling, domain.CallUpdate{}); err != nil {
			renderError(w, r, err, errorStatus(err))
			return
		}
		if c, err = s.Candidates.GetCandidate(ctx, c.ID); err != nil {
			renderError(w, r, err, errorStatus(err))
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "candidate": c, "message": "Call started"})

	case "end_call":
		c, err := s.queuedCandidate(r, req.CandidateID)
		if err != nil {
			renderError(w, r, err, errorStatus(err))
			return
		}
		upd := domain.CallUpdate{CallResult: req.CallResult, CallNotes: req.CallNotes}
		if err := s.Candidates.UpdateStatus(ctx, c.ID, domain.StatusCompleted, upd); err != nil {
			renderError(w, r, err, errorStatus(err))
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "message": "Call completed and moved to history"})

	case "clear_queue":
		var removed int64
		for _, status := range []domain.CandidateStatus{domain.StatusPending, domain.StatusCalling} {
			n, err := s.Candidates.DeleteByStatus(ctx, status)
			if err != nil {
				log.Printf("[ERROR] failed to clear queue: %v", err)
				renderError(w, r, err, http.StatusInternalServerError)
				return
			}
			removed += n
		}
		log.Printf("[INFO] call queue cleared, %d candidates removed", removed)
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "message": "Call queue cleared"})

	default:
		renderError(w, r, fmt.Errorf("invalid action %q", req.Action), http.StatusBadRequest)
	}
}

// queuedCandidate returns a pending or calling candidate, anything else is reported as not found
func (s *Server) queuedCandidate(r *http.Request, id int64) (*domain.Candidate, error) {
	c, err := s.Candidates.GetCandidate(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusPending && c.Status != domain.StatusCalling {
		return nil, fmt.Errorf("candidate %d not in queue: %w", id, repository.ErrNotFound)
	}
	return c, nil
}

// exportData is the full dump returned by the export endpoint
type exportData struct {
	Candidates []domain.Candidate `json:"candidates"`
	Config     *domain.CallConfig `json:"config"`
	ExportedAt time.Time          `json:"exportedAt"`
}

// exportDataHandler dumps candidates and the stored configuration, both are read in parallel
func (s *Server) exportDataHandler(w http.ResponseWriter, r *http.Request) {
	var data exportData
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		data.Candidates, err = s.Candidates.GetCandidates(ctx)
		return err
	})
	g.Go(func() (err error) {
		data.Config, err = s.Configs.GetConfig(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] failed to export data: %v", err)
		renderError(w, r, fmt.Errorf("failed to export data: %w", err), http.StatusInternalServerError)
		return
	}
	data.ExportedAt = time.Now().UTC()
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "data": data, "message": "Data exported successfully"})
}

func (s *Server) dataCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.Candidates.GetCandidates(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get candidates: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "candidates": candidates,
		"message": "Candidates retrieved successfully"})
}

type dataAction struct {
	Action     string             `json:"action"`
	Data       *importData        `json:"data"`
	Candidates []domain.Candidate `json:"candidates"`
}

type importData struct {
	Candidates []domain.Candidate `json:"candidates"`
	Config     *domain.CallConfig `json:"config"`
}

// dataActionHandler handles bulk data operations: import, save_candidates and clear_all
func (s *Server) dataActionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dataAction
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	switch req.Action {
	case "import":
		if req.Data == nil {
			renderError(w, r, errors.New("data is required for import"), http.StatusBadRequest)
			return
		}
		if req.Data.Config != nil {
			if err := req.Data.Config.Validate(); err != nil {
				renderError(w, r, fmt.Errorf("invalid config: %w", err), http.StatusBadRequest)
				return
			}
		}
		// config goes first, a failed save leaves candidates untouched
		if req.Data.Config != nil {
			if _, err := s.Configs.SaveConfig(ctx, *req.Data.Config); err != nil {
				log.Printf("[ERROR] failed to import config: %v", err)
				renderError(w, r, err, http.StatusInternalServerError)
				return
			}
			s.Cache.Refresh(ctx)
		}
		if req.Data.Candidates != nil {
			if err := s.Candidates.ReplaceAll(ctx, sanitizeCandidates(req.Data.Candidates)); err != nil {
				log.Printf("[ERROR] failed to import candidates: %v", err)
				renderError(w, r, err, http.StatusInternalServerError)
				return
			}
		}
		log.Printf("[INFO] data imported, %d candidates, config %t", len(req.Data.Candidates), req.Data.Config != nil)
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "message": "Data imported successfully"})

	case "save_candidates":
		if req.Candidates == nil {
			renderError(w, r, errors.New("candidates data is required"), http.StatusBadRequest)
			return
		}
		saved, err := s.Candidates.CreateCandidates(ctx, sanitizeCandidates(req.Candidates))
		if err != nil {
			log.Printf("[ERROR] failed to save candidates: %v", err)
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "candidates": saved,
			"message": "Candidates saved successfully"})

	case "clear_all":
		if err := s.Candidates.DeleteAll(ctx); err != nil {
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		if err := s.Configs.DeleteConfig(ctx); err != nil {
			renderError(w, r, err, http.StatusInternalServerError)
			return
		}
		s.Cache.Refresh(ctx)
		log.Printf("[WARN] all candidates and call config removed")
		renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "message": "All data cleared successfully"})

	default:
		renderError(w, r, fmt.Errorf("invalid action %q", req.Action), http.StatusBadRequest)
	}
}

// sanitizeCandidates strips markup from the text fields of imported candidates.
// Status is reset to pending when missing or unknown.
func sanitizeCandidates(candidates []domain.Candidate) []domain.Candidate {
	res := make([]domain.Candidate, len(candidates))
	for i, c := range candidates {
		c.ID = 0
		c.Name = sanitizeText(c.Name)
		c.Phone = sanitizeText(c.Phone)
		c.Email = sanitizeText(c.Email)
		c.Position = sanitizeText(c.Position)
		c.CallNotes = sanitizeText(c.CallNotes)
		switch c.Status {
		case domain.StatusPending, domain.StatusCalling, domain.StatusCompleted, domain.StatusFailed:
		default:
			c.Status = domain.StatusPending
		}
		res[i] = c
	}
	return res
}
