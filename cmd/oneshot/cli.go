package main

import (
	"os"
	"strings"
	"time"
)

// CLI is the single source of truth for flags and environment variables.
// Kong populates it; .env files are loaded by godotenv before parsing, so a
// key in .env behaves exactly like an exported variable.
type CLI struct {
	Provider string        `help:"Model provider (gemini or openai)" default:"gemini" env:"ONESHOT_PROVIDER"`
	APIKey   string        `help:"Provider API key (defaults to the selected provider's environment variable: GOOGLE_API_KEY/GEMINI_API_KEY or OPENAI_API_KEY)" env:"ONESHOT_API_KEY"`
	Models   []string      `name:"model" short:"m" help:"Preferred model IDs, most preferred first" env:"ONESHOT_MODELS"`
	Strict   bool          `help:"Fail instead of falling back when no preferred model is available"`
	Timeout  time.Duration `default:"30s" help:"Bound for each network call"`
	JSON     bool          `help:"Emit the report as JSON"`
	List     bool          `help:"List the models available to the credential and exit"`
	Verbose  bool          `short:"v" help:"Enable debug logging"`

	// Prompt is positional so quoting stays natural. Nil means "use the
	// default prompt"; an explicitly empty prompt is passed through as-is.
	Prompt *string `arg:"" optional:"" help:"Prompt to send (defaults to a short question about AI agents)"`
}

// credentialEnvVars maps a provider name to the environment variables its
// credential may come from, in lookup order. Keys are per provider so an
// exported GOOGLE_API_KEY is never handed to OpenAI and vice versa.
var credentialEnvVars = map[string][]string{
	"gemini": {"GOOGLE_API_KEY", "GEMINI_API_KEY"},
	"openai": {"OPENAI_API_KEY"},
}

// resolveAPIKey returns the explicit key when one was given, otherwise the
// first non-empty environment variable for the selected provider. The core
// never reads the environment; resolution happens here, once, before the
// provider is constructed.
func resolveAPIKey(providerName, explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	for _, name := range credentialEnvVars[providerName] {
		if value := os.Getenv(name); strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
