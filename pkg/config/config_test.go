package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Enrollment.DefaultMinAge != 18 {
		t.Errorf("expected default min age 18, got %d", cfg.Enrollment.DefaultMinAge)
	}
	if cfg.Payment.ApprovalRate != 0.5 {
		t.Errorf("expected default approval rate 0.5, got %v", cfg.Payment.ApprovalRate)
	}
	if cfg.IsProduction() {
		t.Error("default env must not be production")
	}
}

func TestLoad_InvalidApprovalRate(t *testing.T) {
	t.Setenv("ENROLL_PAYMENT_APPROVAL_RATE", "1.5")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for approval rate above 1")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENROLL_SERVER_HOST", "127.0.0.1")
	t.Setenv("ENROLL_SERVER_PORT", "9000")
	t.Setenv("ENROLL_ALLOWED_ORIGINS", "https://a.example, https://b.example;")
	t.Setenv("ENROLL_DB_RUN_MIGRATIONS", "yes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress() != "127.0.0.1:9000" {
		t.Errorf("unexpected server address: %q", cfg.ServerAddress())
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("expected 2 allowed origins, got %v", cfg.AllowedOrigins)
	}
	if !cfg.Database.RunMigrations {
		t.Error("expected migrations enabled via truthy env value")
	}
}
