package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PHRASAL_LLM_PROVIDER",
		"PHRASAL_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
		"PHRASAL_OPENAI_API_KEY", "OPENAI_API_KEY",
		"PHRASAL_GEMINI_API_KEY", "GEMINI_API_KEY",
		"PHRASAL_OPENROUTER_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func TestConfigFromEnvPicksProviderWithKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
}

func TestConfigFromEnvExplicitProviderWins(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("PHRASAL_LLM_PROVIDER", "mock")

	cfg := ConfigFromEnv()
	if cfg.Provider != "mock" {
		t.Errorf("Provider = %q, want mock", cfg.Provider)
	}
}

func TestConfigFromEnvPrefersPhrasalKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "generic")
	t.Setenv("PHRASAL_ANTHROPIC_API_KEY", "specific")

	cfg := ConfigFromEnv()
	if cfg.Anthropic.APIKey != "specific" {
		t.Errorf("APIKey = %q, want specific", cfg.Anthropic.APIKey)
	}
}

func TestValidateRequiresKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with no API key")
	}

	cfg.Anthropic.APIKey = "sk-ant"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
