package config

import "testing"

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_VERIFY_SECRET", "bot-secret")
	t.Setenv("PAYMENT_KEY_ID", "key-id")
	t.Setenv("PAYMENT_KEY_SECRET", "key-secret")
}

func TestValidate_PassesWithSecrets(t *testing.T) {
	setRequiredSecrets(t)

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_FailsFastOnMissingSecrets(t *testing.T) {
	testCases := []struct {
		name  string
		unset string
	}{
		{"missing bot secret", "BOT_VERIFY_SECRET"},
		{"missing payment key id", "PAYMENT_KEY_ID"},
		{"missing payment key secret", "PAYMENT_KEY_SECRET"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredSecrets(t)
			t.Setenv(tc.unset, "")

			cfg := Load()
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation to fail")
			}
		})
	}
}

func TestLoad_StripsTrailingSlashFromOrigin(t *testing.T) {
	setRequiredSecrets(t)
	t.Setenv("ALLOWED_ORIGIN", "https://bookyourtravell.com/")

	cfg := Load()
	if cfg.Security.AllowedOrigin != "https://bookyourtravell.com" {
		t.Errorf("expected trailing slash stripped, got %q", cfg.Security.AllowedOrigin)
	}
}

func TestValidate_RejectsNonPositiveRateLimit(t *testing.T) {
	setRequiredSecrets(t)
	t.Setenv("RATE_LIMIT_PER_IP", "-1")

	cfg := Load()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation to fail for a negative limit")
	}
}
