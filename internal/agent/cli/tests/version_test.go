package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/cli"
)

func TestNewVersionCmd_PrintsVersionAndBuildDate(t *testing.T) {
	cmd := cli.NewVersionCmd("1.2.3", "2026-08-30")

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "version=1.2.3") {
		t.Fatalf("expected version in output, got: %q", got)
	}
	if !strings.Contains(got, "build_date=2026-08-30") {
		t.Fatalf("expected build date in output, got: %q", got)
	}
}
