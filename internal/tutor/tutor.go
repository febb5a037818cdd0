// Package tutor holds the prompt construction and response reshaping for the
// language-tutoring endpoints: rendering instructions for the model,
// flattening chat history into a single prompt, and recovering the JSON
// learning track from a free-text model reply.
package tutor

import (
	"fmt"
	"strings"

	"echo-tutor-backend/internal/types"
)

// Sentinels returned in place of empty model output. Failure always rides in
// a populated field, never a missing one or an HTTP error.
const (
	NoResponseSentinel      = "[No response generated]"
	NoTranscriptionSentinel = "[No transcription available]"
)

// FallbackTopics pairs with FallbackSystemPrompt whenever the model reply
// cannot be turned into a learning track.
var FallbackTopics = []string{"Getting Started", "Basic Conversation", "Practice Exercise"}

func FallbackSystemPrompt(language, goal string) string {
	return fmt.Sprintf("I'm a friendly %s tutor helping you with: %s", language, goal)
}

func FallbackTrack(language, goal string) types.OnboardingResponse {
	return types.OnboardingResponse{
		SystemPrompt:  FallbackSystemPrompt(language, goal),
		InitialTopics: FallbackTopics,
	}
}

func ChatErrorMessage(err error) string {
	return fmt.Sprintf("I'm sorry, I encountered an error: %v", err)
}

func TranscriptionErrorMessage(err error) string {
	return fmt.Sprintf("[Error during transcription: %v]", err)
}

// BuildChatPrompt flattens the system prompt, history and new message into
// the transcript format the model continues from:
//
//	System: <system prompt>
//	User: <history...>
//	AI: <history...>
//	User: <new message>
//	AI:
func BuildChatPrompt(systemPrompt string, history []types.ChatMessage, userMessage string) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		prefix := "AI"
		if m.Role == "human" {
			prefix = "User"
		}
		lines = append(lines, prefix+": "+m.Content)
	}
	return fmt.Sprintf("System: %s\n%s\nUser: %s\nAI:", systemPrompt, strings.Join(lines, "\n"), userMessage)
}
