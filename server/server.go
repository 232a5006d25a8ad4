package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/callscope/pkg/assistant"
	"github.com/umputun/callscope/pkg/domain"
	"github.com/umputun/callscope/pkg/llm"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/provider/vapi"
	"github.com/umputun/callscope/pkg/repository"
	"github.com/umputun/callscope/pkg/scriptcache"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . ConfigCache
//go:generate moq -out mocks/config_store.go -pkg mocks -skip-ensure -fmt goimports . ConfigStore
//go:generate moq -out mocks/candidates.go -pkg mocks -skip-ensure -fmt goimports . CandidateStore
//go:generate moq -out mocks/scripts.go -pkg mocks -skip-ensure -fmt goimports . ScriptStore
//go:generate moq -out mocks/dialer.go -pkg mocks -skip-ensure -fmt goimports . Dialer
//go:generate moq -out mocks/assistant.go -pkg mocks -skip-ensure -fmt goimports . AssistantService
//go:generate moq -out mocks/vapi.go -pkg mocks -skip-ensure -fmt goimports . VapiAPI
//go:generate moq -out mocks/twilio.go -pkg mocks -skip-ensure -fmt goimports . TwilioAPI
//go:generate moq -out mocks/llm.go -pkg mocks -skip-ensure -fmt goimports . ModelChecker
//go:generate moq -out mocks/pinger.go -pkg mocks -skip-ensure -fmt goimports . Pinger

// Server represents HTTP server instance
type Server struct {
	Deps
	config  ConfigProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deps are the services used by handlers
type Deps struct {
	Cache              ConfigCache
	Configs            ConfigStore
	Candidates         CandidateStore
	Scripts            ScriptStore
	Dialer             Dialer
	Assistant          AssistantService
	Vapi               VapiAPI
	Twilio             TwilioAPI
	LLM                ModelChecker
	DB                 Pinger
	WebhookSecret      string // optional bearer token expected on the vapi webhook
	DefaultCountryCode string
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// ConfigCache serves the current call configuration
type ConfigCache interface {
	Get(ctx context.Context) scriptcache.Result
	Refresh(ctx context.Context) scriptcache.Result
}

// ConfigStore persists the call configuration
type ConfigStore interface {
	GetConfig(ctx context.Context) (*domain.CallConfig, error)
	SaveConfig(ctx context.Context, cfg domain.CallConfig) (*domain.CallConfig, error)
	DeleteConfig(ctx context.Context) error
}

// CandidateStore persists candidates and their call state
type CandidateStore interface {
	AddToQueue(ctx context.Context, candidates []domain.Candidate) ([]domain.Candidate, error)
	CreateCandidates(ctx context.Context, candidates []domain.Candidate) ([]domain.Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error)
	GetCandidateByCallID(ctx context.Context, callID string) (*domain.Candidate, error)
	GetCandidates(ctx context.Context) ([]domain.Candidate, error)
	GetQueue(ctx context.Context) ([]domain.Candidate, error)
	GetHistory(ctx context.Context) ([]domain.Candidate, error)
	UpdateStatus(ctx context.Context, id int64, status domain.CandidateStatus, upd domain.CallUpdate) error
	DeleteByStatus(ctx context.Context, status domain.CandidateStatus) (int64, error)
	DeleteAll(ctx context.Context) error
	ReplaceAll(ctx context.Context, candidates []domain.Candidate) error
	CountCandidates(ctx context.Context) (int64, error)
}

// ScriptStore is the script library
type ScriptStore interface {
	GetScripts(ctx context.Context) ([]domain.Script, error)
	GetScript(ctx context.Context, id int64) (*domain.Script, error)
	CreateScript(ctx context.Context, s *domain.Script) error
	UpdateScript(ctx context.Context, id int64, upd repository.ScriptUpdate) (*domain.Script, error)
	DeleteScript(ctx context.Context, id int64) error
}

// Dialer places interview calls
type Dialer interface {
	Dial(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error)
	Smart(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error)
	Hybrid(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error)
	TwilioOnly(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error)
	VapiOnly(ctx context.Context, req domain.CallRequest) (*domain.CallResult, error)
}

// AssistantService reads and updates the assistant settings
type AssistantService interface {
	Current(ctx context.Context) assistant.Settings
	Update(ctx context.Context, upd assistant.Settings) (assistant.Settings, error)
}

// VapiAPI is the part of the Vapi client used directly by handlers
type VapiAPI interface {
	Configured() bool
	GetCall(ctx context.Context, id string) (*vapi.Call, error)
	CreateAssistant(ctx context.Context, spec vapi.AssistantSpec) (*vapi.Assistant, error)
	GetAssistant(ctx context.Context, id string) (*vapi.Assistant, error)
	ListAssistants(ctx context.Context) ([]vapi.Assistant, error)
	UpdateAssistant(ctx context.Context, id string, fields map[string]any) (*vapi.Assistant, error)
	DeleteAssistant(ctx context.Context, id string) error
}

// TwilioAPI is the part of the Twilio client used directly by handlers
type TwilioAPI interface {
	Configured() bool
	CanLookup() bool
	FetchCall(ctx context.Context, sid string) (*twilio.Call, error)
	VerifiedCallerIDs(ctx context.Context) ([]twilio.CallerID, error)
	IsVerified(ctx context.Context, phone string) (bool, error)
}

// ModelChecker verifies the LLM endpoint
type ModelChecker interface {
	Configured() bool
	Model() string
	Check(ctx context.Context) (*llm.ModelInfo, error)
}

// Pinger checks the database connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	s := &Server{
		Deps:    deps,
		config:  cfg,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("callscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /health", s.healthHandler)
		r.HandleFunc("GET /diagnostics", s.diagnosticsHandler)

		r.HandleFunc("GET /config", s.getConfigHandler)
		r.HandleFunc("POST /config", s.saveConfigHandler)
		r.HandleFunc("POST /config/refresh", s.refreshConfigHandler)
		r.HandleFunc("GET /config/default", s.defaultConfigHandler)

		r.HandleFunc("GET /assistant", s.getAssistantHandler)
		r.HandleFunc("POST /assistant", s.updateAssistantHandler)

		r.HandleFunc("GET /scripts", s.listScriptsHandler)
		r.HandleFunc("GET /scripts/{id}", s.getScriptHandler)
		r.HandleFunc("POST /scripts", s.createScriptHandler)
		r.HandleFunc("PUT /scripts/{id}", s.updateScriptHandler)
		r.HandleFunc("DELETE /scripts/{id}", s.deleteScriptHandler)

		r.HandleFunc("GET /calls", s.listCallsHandler)
		r.HandleFunc("POST /calls", s.callsActionHandler)

		r.HandleFunc("POST /call", s.dialHandler(Dialer.Dial))
		r.HandleFunc("POST /call/smart", s.dialHandler(Dialer.Smart))
		r.HandleFunc("POST /call/hybrid", s.dialHandler(Dialer.Hybrid))
		r.HandleFunc("POST /call/twilio", s.dialHandler(Dialer.TwilioOnly))
		r.HandleFunc("POST /call/vapi", s.dialHandler(Dialer.VapiOnly))
		r.HandleFunc("GET /call/vapi/{id}", s.vapiCallHandler)
		r.HandleFunc("GET /call/twilio/{sid}", s.twilioCallHandler)

		r.HandleFunc("POST /phone/verify", s.verifyPhoneHandler)
		r.HandleFunc("GET /phone/verified", s.verifiedPhonesHandler)

		r.HandleFunc("GET /vapi/assistants", s.listVapiAssistantsHandler)
		r.HandleFunc("POST /vapi/assistants", s.createVapiAssistantHandler)
		r.HandleFunc("GET /vapi/assistants/{id}", s.getVapiAssistantHandler)
		r.HandleFunc("PUT /vapi/assistants/{id}", s.updateVapiAssistantHandler)
		r.HandleFunc("DELETE /vapi/assistants/{id}", s.deleteVapiAssistantHandler)

		r.HandleFunc("GET /data/export", s.exportDataHandler)
		r.HandleFunc("GET /data/candidates", s.dataCandidatesHandler)
		r.HandleFunc("POST /data", s.dataActionHandler)
	})

	// provider callbacks
	s.router.HandleFunc("POST /webhook/vapi", s.vapiWebhookHandler)
	s.router.HandleFunc("GET /webhook/vapi", s.vapiWebhookAliveHandler)
	s.router.HandleFunc("POST /webhook/twilio/status", s.twilioStatusHandler)
	s.router.HandleFunc("POST /twilio/gather", s.twilioGatherHandler)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// healthHandler reports which services are configured, without calling any of them
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status":    "healthy",
		"version":   s.version,
		"timestamp": time.Now().UTC(),
		"services": map[string]any{
			"database": map[string]bool{"configured": s.DB != nil},
			"vapi":     map[string]bool{"configured": s.Vapi.Configured()},
			"twilio":   map[string]bool{"configured": s.Twilio.Configured(), "lookup": s.Twilio.CanLookup()},
			"llm":      map[string]bool{"configured": s.LLM != nil && s.LLM.Configured()},
			"webhook":  map[string]bool{"secured": s.WebhookSecret != ""},
		},
	}
	renderJSON(w, r, http.StatusOK, health)
}

// decodeJSON reads the request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// errorStatus maps service errors to HTTP codes, Vapi API errors keep their own status
func errorStatus(err error) int {
	var apiErr *vapi.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.StatusCode >= 400:
		return apiErr.StatusCode
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
