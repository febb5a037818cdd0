package tutor

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompts holds the instruction templates sent to the model. They normally
// load from prompts/tutor.yaml; compiled-in defaults cover a missing file so
// the binary runs standalone.
type Prompts struct {
	Onboarding string `yaml:"onboarding"`
	Transcribe string `yaml:"transcribe"`
}

const defaultOnboardingTemplate = `You are an expert curriculum designer for an AI language tutor.
A user wants to learn {language} to achieve a specific goal: {goal}.

Generate a JSON object with the following keys:
1. "system_prompt" - A detailed persona description including role, accent (if any), teaching style, and constrained vocabulary tailored to the goal.
2. "initial_topics" - An array of 3-5 short starter topics relevant to the goal.

Return ONLY valid JSON in this exact format:
{
  "system_prompt": "You are 'Name', a [role description]...",
  "initial_topics": ["Topic 1", "Topic 2", "Topic 3"]
}`

const defaultTranscribeInstruction = "Please transcribe the following audio file accurately. Return only the transcription text."

func DefaultPrompts() Prompts {
	return Prompts{
		Onboarding: defaultOnboardingTemplate,
		Transcribe: defaultTranscribeInstruction,
	}
}

// LoadPrompts reads a YAML override file. Fields left empty in the file keep
// their defaults.
func LoadPrompts(path string) (Prompts, error) {
	p := DefaultPrompts()
	b, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	var override Prompts
	if err := yaml.Unmarshal(b, &override); err != nil {
		return p, err
	}
	if strings.TrimSpace(override.Onboarding) != "" {
		p.Onboarding = override.Onboarding
	}
	if strings.TrimSpace(override.Transcribe) != "" {
		p.Transcribe = override.Transcribe
	}
	return p, nil
}

// OnboardingPrompt renders the curriculum-designer instruction for a
// language/goal pair.
func (p Prompts) OnboardingPrompt(language, goal string) string {
	return strings.NewReplacer("{language}", language, "{goal}", goal).Replace(p.Onboarding)
}
