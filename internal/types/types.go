package types

// OnboardingRequest carries the user's goal selection.
type OnboardingRequest struct {
	Language string `json:"language"`
	Goal     string `json:"goal"`
}

// OnboardingResponse is the generated learning track: a tutoring persona and
// a handful of starter topics.
type OnboardingResponse struct {
	SystemPrompt  string   `json:"system_prompt"`
	InitialTopics []string `json:"initial_topics"`
}

// ChatMessage is a single history entry. Role is "human" for the learner and
// "ai" for the tutor.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	SystemPrompt string        `json:"system_prompt"`
	History      []ChatMessage `json:"history"`
	UserMessage  string        `json:"user_message"`
}

type ChatResponse struct {
	AIMessage string `json:"ai_message"`
}

type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}

type SessionStartRequest struct {
	TrackID  string `json:"trackId"`
	Voice    string `json:"voice,omitempty"`
	Language string `json:"language,omitempty"`
}

type SessionStartResponse struct {
	Channel   string `json:"channel"`
	UID       string `json:"uid"`
	RTCToken  string `json:"rtcToken"`
	RTMToken  string `json:"rtmToken"`
	BotStatus string `json:"botStatus"`
}

type SessionStopRequest struct {
	Channel string `json:"channel"`
}

type SessionStopResponse struct {
	Status  string `json:"status"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
}

// DemoTokenResponse is the ad-hoc payload served by GET /agora-token for
// quick manual testing; the token is a placeholder, not a real credential.
type DemoTokenResponse struct {
	Token       string `json:"token"`
	UID         string `json:"uid"`
	ChannelName string `json:"channel_name"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status        string   `json:"status"`
	APIConfigured bool     `json:"api_configured"`
	Endpoints     []string `json:"endpoints"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
