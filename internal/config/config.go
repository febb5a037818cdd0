package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// Gemini
	GoogleAPIKey string
	GeminiModel  string
	// CORS
	AllowedOrigins []string
	// Prompt templates (optional override file)
	PromptsFile string
	// Agora
	AgoraAppID          string
	AgoraAppCertificate string
	AgoraTokenTTL       int
	AgoraCustomerID     string
	AgoraCustomerSecret string
	AgoraRegion         string
}

// Load reads configuration from the environment (and a .env file when
// present). Missing credentials are allowed; the affected endpoints degrade
// to their fallback payloads instead of the process refusing to start.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:                getEnvDefault("PORT", "8000"),
		GoogleAPIKey:        os.Getenv("GOOGLE_API_KEY"),
		GeminiModel:         getEnvDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		AllowedOrigins:      getEnvListDefault("ALLOWED_ORIGINS", []string{"*"}),
		PromptsFile:         getEnvDefault("PROMPTS_FILE", "prompts/tutor.yaml"),
		AgoraAppID:          os.Getenv("AGORA_APP_ID"),
		AgoraAppCertificate: os.Getenv("AGORA_APP_CERTIFICATE"),
		AgoraTokenTTL:       getEnvIntDefault("AGORA_TOKEN_TTL", 3600),
		AgoraCustomerID:     os.Getenv("AGORA_CUSTOMER_ID"),
		AgoraCustomerSecret: os.Getenv("AGORA_CUSTOMER_SECRET"),
		AgoraRegion:         getEnvDefault("AGORA_REGION", "ap"),
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getEnvListDefault(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			s := strings.TrimSpace(p)
			if s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
