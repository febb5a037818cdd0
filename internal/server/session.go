package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"echo-tutor-backend/internal/agora"
	"echo-tutor-backend/internal/types"
)

// Bot start statuses surfaced in SessionStartResponse.botStatus.
const (
	botStatusStarted       = "started"
	botStatusNotConfigured = "not_configured"
)

// handleDemoToken serves a throwaway channel/uid pair with a placeholder
// token for quick manual testing; it is not tied to a real session.
func (s *Server) handleDemoToken(w http.ResponseWriter, r *http.Request) {
	if s.cfg.AgoraAppID == "" {
		s.writeJSON(w, http.StatusOK, types.ErrorResponse{Error: "AGORA_APP_ID not configured"})
		return
	}
	uid := s.ids.ShortID()
	s.writeJSON(w, http.StatusOK, types.DemoTokenResponse{
		Token:       "demo-rtc-" + uid,
		UID:         uid,
		ChannelName: s.ids.Channel("echo"),
	})
}

// handleSessionStart creates a fresh channel, signs RTC/RTM tokens for the
// caller and summons the conversational AI bot into the channel. The response
// is always 200; failures ride in botStatus and empty-string tokens.
func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	var req types.SessionStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.TrackID) == "" {
		s.writeError(w, http.StatusBadRequest, "trackId is required")
		return
	}
	if s.cfg.AgoraAppID == "" {
		s.writeJSON(w, http.StatusOK, types.SessionStartResponse{
			BotStatus: "error: AGORA_APP_ID not configured",
		})
		return
	}

	channel := s.ids.Channel("")
	uid := s.ids.ShortID()

	rtcToken, err := s.tokens.RTCToken(channel, agora.NumericUID(uid))
	if err != nil {
		s.log.Errorw("rtc token build failed", "channel", channel, "err", err)
	}
	rtmToken, err := s.tokens.RTMToken(uid)
	if err != nil {
		s.log.Errorw("rtm token build failed", "uid", uid, "err", err)
	}
	botToken, err := s.tokens.RTCToken(channel, agora.BotUID)
	if err != nil {
		s.log.Errorw("bot rtc token build failed", "channel", channel, "err", err)
	}

	botStatus := botStatusStarted
	err = s.bot.StartBot(r.Context(), agora.StartBotParams{
		Channel:   channel,
		Token:     botToken,
		Language:  req.Language,
		Voice:     req.Voice,
		LLMAPIKey: s.cfg.GoogleAPIKey,
		LLMModel:  s.cfg.GeminiModel,
	})
	switch {
	case errors.Is(err, agora.ErrNotConfigured):
		botStatus = botStatusNotConfigured
	case err != nil:
		s.log.Errorw("bot start failed", "channel", channel, "err", err)
		botStatus = "error: " + err.Error()
	}

	s.writeJSON(w, http.StatusOK, types.SessionStartResponse{
		Channel:   channel,
		UID:       uid,
		RTCToken:  rtcToken,
		RTMToken:  rtmToken,
		BotStatus: botStatus,
	})
}

func (s *Server) handleSessionStop(w http.ResponseWriter, r *http.Request) {
	var req types.SessionStopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Channel) == "" {
		s.writeError(w, http.StatusBadRequest, "channel is required")
		return
	}

	if err := s.bot.StopBot(r.Context(), req.Channel); err != nil {
		s.log.Errorw("bot stop failed", "channel", req.Channel, "err", err)
		s.writeJSON(w, http.StatusOK, types.SessionStopResponse{Status: "error", Message: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, types.SessionStopResponse{Status: "stopped", Channel: req.Channel})
}
