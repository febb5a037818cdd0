package tutor

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// Model replies are free text that should contain exactly one JSON object.
// The greedy outermost-braces match is a best-effort heuristic, not a parser;
// every caller must be prepared for it to fail and fall back.
var trackPattern = regexp.MustCompile(`(?s)\{.*\}`)

var (
	errNoJSON      = errors.New("no JSON object found in model reply")
	errMissingKeys = errors.New("model reply is missing system_prompt or initial_topics")
)

type extractedTrack struct {
	SystemPrompt  string   `json:"system_prompt"`
	InitialTopics []string `json:"initial_topics"`
}

// ExtractTrack pulls the learning track out of a raw model reply. It returns
// an error when no braces substring exists, the substring is not valid JSON,
// or either required key is absent.
func ExtractTrack(raw string) (string, []string, error) {
	match := trackPattern.FindString(raw)
	if match == "" {
		return "", nil, errNoJSON
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(match), &fields); err != nil {
		return "", nil, fmt.Errorf("invalid JSON in model reply: %w", err)
	}
	if _, ok := fields["system_prompt"]; !ok {
		return "", nil, errMissingKeys
	}
	if _, ok := fields["initial_topics"]; !ok {
		return "", nil, errMissingKeys
	}
	var track extractedTrack
	if err := json.Unmarshal([]byte(match), &track); err != nil {
		return "", nil, fmt.Errorf("unexpected track shape in model reply: %w", err)
	}
	return track.SystemPrompt, track.InitialTopics, nil
}
