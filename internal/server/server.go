package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"echo-tutor-backend/internal/agora"
	"echo-tutor-backend/internal/config"
	"echo-tutor-backend/internal/gemini"
	"echo-tutor-backend/internal/ids"
	"echo-tutor-backend/internal/tutor"
	"echo-tutor-backend/internal/types"
)

const apiVersion = "1.0.0"

var errGeminiNotConfigured = errors.New("GOOGLE_API_KEY not configured")

// endpointPaths is the route list advertised by /health.
var endpointPaths = []string{
	"/",
	"/health",
	"/onboarding/generate-track",
	"/chat/text",
	"/speech-to-text",
	"/agora-token",
	"/session/start",
	"/session/stop",
}

type Server struct {
	router  *chi.Mux
	cfg     config.Config
	log     *zap.SugaredLogger
	gen     gemini.Generator // nil when GOOGLE_API_KEY is unset
	prompts tutor.Prompts
	tokens  agora.TokenService
	bot     agora.Orchestrator
	ids     ids.Generator
}

// NewServer wires routes and vendor clients from an immutable config. gen may
// be nil; the generative endpoints then serve their fallback payloads.
func NewServer(cfg config.Config, gen gemini.Generator, log *zap.SugaredLogger) *Server {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	prompts, err := tutor.LoadPrompts(cfg.PromptsFile)
	if err != nil {
		log.Warnw("prompts file not loaded, using built-in templates", "path", cfg.PromptsFile, "err", err)
	}

	s := &Server{
		router:  r,
		cfg:     cfg,
		log:     log,
		gen:     gen,
		prompts: prompts,
		tokens: agora.TokenService{
			AppID:          cfg.AgoraAppID,
			AppCertificate: cfg.AgoraAppCertificate,
			TTLSeconds:     uint32(cfg.AgoraTokenTTL),
		},
		bot: agora.NewBotClient(cfg.AgoraAppID, cfg.AgoraCustomerID, cfg.AgoraCustomerSecret, cfg.AgoraRegion),
		ids: ids.UUIDGenerator{},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/onboarding/generate-track", s.handleGenerateTrack)
	s.router.Post("/chat/text", s.handleChat)
	s.router.Post("/speech-to-text", s.handleSpeechToText)
	s.router.Get("/agora-token", s.handleDemoToken)
	s.router.Post("/session/start", s.handleSessionStart)
	s.router.Post("/session/stop", s.handleSessionStop)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.RootResponse{
		Message: "Echo API is running!",
		Version: apiVersion,
		Status:  "healthy",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:        "healthy",
		APIConfigured: s.gen != nil,
		Endpoints:     endpointPaths,
	})
}

// generateText guards the nil generator so every caller hits the same
// not-configured error and falls back from there.
func (s *Server) generateText(ctx context.Context, prompt string) (string, error) {
	if s.gen == nil {
		return "", errGeminiNotConfigured
	}
	return s.gen.GenerateText(ctx, prompt)
}

func (s *Server) generateAudio(ctx context.Context, instruction, mimeType string, data []byte) (string, error) {
	if s.gen == nil {
		return "", errGeminiNotConfigured
	}
	return s.gen.GenerateAudio(ctx, instruction, mimeType, data)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.ErrorResponse{Error: msg})
}
