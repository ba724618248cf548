package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/config"
)

func TestNewLogoutCmd_RemovesCredsFile(t *testing.T) {
	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	if err := config.Save(credsPath, &config.Credentials{Token: "token-1"}); err != nil {
		t.Fatalf("save creds: %v", err)
	}

	app := &cli.App{
		CredsPath: credsPath,
		Creds:     &config.Credentials{Token: "token-1"},
	}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !strings.Contains(out.String(), "logged out") {
		t.Fatalf("unexpected output: %q", out.String())
	}
	if app.Creds.Token != "" {
		t.Fatalf("expected token cleared, got %q", app.Creds.Token)
	}
	if _, err := os.Stat(credsPath); !os.IsNotExist(err) {
		t.Fatalf("expected creds file removed, stat err=%v", err)
	}
}

// logout без активной сессии — не ошибка
func TestNewLogoutCmd_NoSession_IsOK(t *testing.T) {
	tmpDir := t.TempDir()
	app := &cli.App{
		CredsPath: filepath.Join(tmpDir, "no-such-file.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewLogoutCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out.String(), "logged out") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
