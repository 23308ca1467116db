package config

import (
	"os"
	"os/exec"
	"testing"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when the
// environment is empty.
func TestLoadConfig_Defaults(t *testing.T) {
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("BACKEND_URL")
	_ = os.Unsetenv("MONGO_URI")
	_ = os.Unsetenv("MONGO_DB")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Backend.URL != "http://localhost:3000" {
		t.Fatalf("unexpected backend url: %q", AppConfig.Backend.URL)
	}
	if AppConfig.Mongo.URI != "mongodb://localhost:27017" || AppConfig.Mongo.Database != "marketDB" {
		t.Fatalf("unexpected mongo defaults: %+v", AppConfig.Mongo)
	}
}

// TestLoadConfig_EnvOverride verifies environment variables win over
// defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://stocks.internal:9000")

	LoadConfig()

	if AppConfig.Backend.URL != "http://stocks.internal:9000" {
		t.Fatalf("env override ignored: %q", AppConfig.Backend.URL)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig
// triggers a fatal exit when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
