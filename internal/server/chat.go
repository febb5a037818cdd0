package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"echo-tutor-backend/internal/tutor"
	"echo-tutor-backend/internal/types"
)

// handleChat relays one conversation turn. Model failures are reported inside
// ai_message so the client conversation flow never breaks on a 5xx.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.UserMessage) == "" {
		s.writeError(w, http.StatusBadRequest, "user_message is required")
		return
	}

	prompt := tutor.BuildChatPrompt(req.SystemPrompt, req.History, req.UserMessage)
	reply, err := s.generateText(r.Context(), prompt)
	if err != nil {
		s.log.Warnw("chat generation failed", "err", err)
		s.writeJSON(w, http.StatusOK, types.ChatResponse{AIMessage: tutor.ChatErrorMessage(err)})
		return
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		reply = tutor.NoResponseSentinel
	}
	s.writeJSON(w, http.StatusOK, types.ChatResponse{AIMessage: reply})
}
