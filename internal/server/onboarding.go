package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"echo-tutor-backend/internal/tutor"
	"echo-tutor-backend/internal/types"
)

// handleGenerateTrack turns (language, goal) into a tutoring persona and
// starter topics. Upstream failures of any kind degrade to the fallback
// track; only malformed client input is an HTTP error.
func (s *Server) handleGenerateTrack(w http.ResponseWriter, r *http.Request) {
	var req types.OnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Language) == "" || strings.TrimSpace(req.Goal) == "" {
		s.writeError(w, http.StatusBadRequest, "language and goal are required")
		return
	}

	raw, err := s.generateText(r.Context(), s.prompts.OnboardingPrompt(req.Language, req.Goal))
	if err != nil {
		s.log.Warnw("learning track generation failed", "language", req.Language, "goal", req.Goal, "err", err)
		s.writeJSON(w, http.StatusOK, tutor.FallbackTrack(req.Language, req.Goal))
		return
	}

	systemPrompt, topics, err := tutor.ExtractTrack(raw)
	if err != nil {
		s.log.Warnw("could not extract learning track from model reply", "err", err, "reply", raw)
		s.writeJSON(w, http.StatusOK, tutor.FallbackTrack(req.Language, req.Goal))
		return
	}
	s.writeJSON(w, http.StatusOK, types.OnboardingResponse{
		SystemPrompt:  systemPrompt,
		InitialTopics: topics,
	})
}
