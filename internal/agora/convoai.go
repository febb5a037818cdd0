package agora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// BotUID is the fixed uid the conversational AI bot joins channels with.
const BotUID uint32 = 999999

// ErrNotConfigured reports missing orchestration credentials. Handlers map it
// to an explicit configuration-missing status rather than a generic error.
var ErrNotConfigured = errors.New("agora customer credentials not configured")

var regionBaseURLs = map[string]string{
	"us": "https://api.agora.io",
	"eu": "https://api-eu.agora.io",
	"ap": "https://api-ap.agora.io",
	"cn": "https://api-cn.agora.io",
}

const defaultRegion = "ap"

// BaseURLForRegion resolves the orchestration API endpoint for a region code,
// falling back to the ap endpoint for unrecognized codes.
func BaseURLForRegion(region string) string {
	if u, ok := regionBaseURLs[region]; ok {
		return u
	}
	return regionBaseURLs[defaultRegion]
}

// Orchestrator is the bot lifecycle surface the session handlers depend on.
type Orchestrator interface {
	StartBot(ctx context.Context, p StartBotParams) error
	StopBot(ctx context.Context, channel string) error
}

// BotClient talks to the vendor's speech-to-speech bot orchestration REST API
// with basic auth. Requests carry a fixed 30 second timeout and are never
// retried.
type BotClient struct {
	httpClient     *http.Client
	baseURL        string
	appID          string
	customerID     string
	customerSecret string
}

var _ Orchestrator = (*BotClient)(nil)

func NewBotClient(appID, customerID, customerSecret, region string) *BotClient {
	return &BotClient{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		baseURL:        BaseURLForRegion(region),
		appID:          appID,
		customerID:     customerID,
		customerSecret: customerSecret,
	}
}

// StartBotParams configures the bot joining a channel. Token is the bot's own
// RTC token; LLMAPIKey/LLMModel point the bot at the same generative model
// the text endpoints use.
type StartBotParams struct {
	Channel   string
	Token     string
	Language  string
	Voice     string
	LLMAPIKey string
	LLMModel  string
}

func (c *BotClient) StartBot(ctx context.Context, p StartBotParams) error {
	if c.customerID == "" || c.customerSecret == "" {
		return ErrNotConfigured
	}
	language := p.Language
	if language == "" {
		language = "en-US"
	}
	voice := p.Voice
	if voice == "" {
		voice = "female"
	}
	payload := map[string]any{
		"appId":               c.appID,
		"channel":             p.Channel,
		"token":               p.Token,
		"uid":                 fmt.Sprint(BotUID),
		"enableVoiceChat":     true,
		"enableTranscription": true,
		"voice": map[string]any{
			"language":  language,
			"voiceType": voice,
		},
		"llm": map[string]any{
			"provider": "google",
			"apiKey":   p.LLMAPIKey,
			"model":    p.LLMModel,
		},
	}
	return c.post(ctx, fmt.Sprintf("/v1/projects/%s/rtc/speech-to-speech/start", c.appID), payload)
}

func (c *BotClient) StopBot(ctx context.Context, channel string) error {
	if c.customerID == "" || c.customerSecret == "" {
		return ErrNotConfigured
	}
	payload := map[string]any{
		"channel": channel,
		"uid":     fmt.Sprint(BotUID),
	}
	return c.post(ctx, fmt.Sprintf("/v1/projects/%s/rtc/speech-to-speech/stop", c.appID), payload)
}

func (c *BotClient) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.customerID, c.customerSecret)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("agora api %s failed with status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}
