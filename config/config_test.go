package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DEFAULT_REQUIRED_SCORE", "")
	t.Setenv("DEFAULT_MAX_ATTEMPTS", "")
	t.Setenv("PROGRESSION_WEBHOOK_URL", "")

	LoadConfig()

	if AppConfig.Port != "3000" {
		t.Errorf("Port = %q, want 3000", AppConfig.Port)
	}
	if AppConfig.DefaultRequiredScore != 70 {
		t.Errorf("DefaultRequiredScore = %v, want 70", AppConfig.DefaultRequiredScore)
	}
	if AppConfig.DefaultMaxAttempts != 3 {
		t.Errorf("DefaultMaxAttempts = %v, want 3", AppConfig.DefaultMaxAttempts)
	}
	if AppConfig.ProgressionWebhookURL != "" {
		t.Errorf("ProgressionWebhookURL = %q, want empty", AppConfig.ProgressionWebhookURL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DEFAULT_REQUIRED_SCORE", "85.5")
	t.Setenv("DEFAULT_MAX_ATTEMPTS", "5")
	t.Setenv("PROGRESSION_WEBHOOK_URL", "https://hooks.example.com/progress")

	LoadConfig()

	if AppConfig.DefaultRequiredScore != 85.5 {
		t.Errorf("DefaultRequiredScore = %v, want 85.5", AppConfig.DefaultRequiredScore)
	}
	if AppConfig.DefaultMaxAttempts != 5 {
		t.Errorf("DefaultMaxAttempts = %v, want 5", AppConfig.DefaultMaxAttempts)
	}
	if AppConfig.ProgressionWebhookURL != "https://hooks.example.com/progress" {
		t.Errorf("ProgressionWebhookURL = %q", AppConfig.ProgressionWebhookURL)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Setenv("DEFAULT_REQUIRED_SCORE", "150")
	t.Setenv("DEFAULT_MAX_ATTEMPTS", "0")

	LoadConfig()

	if AppConfig.DefaultRequiredScore != 70 {
		t.Errorf("DefaultRequiredScore = %v, want fallback 70 for out-of-range value", AppConfig.DefaultRequiredScore)
	}
	if AppConfig.DefaultMaxAttempts != 3 {
		t.Errorf("DefaultMaxAttempts = %v, want fallback 3 for invalid value", AppConfig.DefaultMaxAttempts)
	}
}
