package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseJSON(t *testing.T) {
	p := writeSource(t, t.TempDir(), "ok.core", "~ x = 1 + 2;\n")
	code, out, errOut := runCLI(t, "parse", "--format", "json", p)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	var root map[string]any
	if err := json.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if root["kind"] != "TopLevel" {
		t.Errorf("unexpected root %v", root["kind"])
	}
}

func TestParseErrorsExitOne(t *testing.T) {
	p := writeSource(t, t.TempDir(), "bad.core", "int x;\n")
	code, out, errOut := runCLI(t, "parse", "--color", "off", "--error-display-style", "simple", p)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if out != "" {
		t.Errorf("tree printed despite errors:\n%s", out)
	}
	if !strings.Contains(errOut, "invalid expression @") || !strings.HasSuffix(errOut, "Aborting due to previous errors\n") {
		t.Errorf("unexpected stderr:\n%s", errOut)
	}
	if strings.Contains(errOut, "error: ") {
		t.Errorf("abort must not print an error line:\n%s", errOut)
	}
}

func TestConfigFromManifest(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "Core.toml", "[config.error]\ndisplay-style = \"json\"\n")
	p := writeSource(t, dir, "bad.core", "int x;\n")
	code, _, errOut := runCLI(t, "parse", "--color", "off", p)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.Contains(errOut, `{"message":"invalid expression"`) {
		t.Errorf("manifest style not applied:\n%s", errOut)
	}
}

func TestInvalidStyleFlag(t *testing.T) {
	p := writeSource(t, t.TempDir(), "ok.core", "~ x = 1;\n")
	code, _, errOut := runCLI(t, "parse", "--error-display-style", "fancy", p)
	if code != 1 || !strings.Contains(errOut, "error: config:") {
		t.Errorf("exit %d, stderr:\n%s", code, errOut)
	}
}

func TestTokenizeFormats(t *testing.T) {
	p := writeSource(t, t.TempDir(), "ok.core", "~ x = 1;")
	code, out, errOut := runCLI(t, "tokenize", p)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("expected 5 tokens, got %d lines:\n%s", lines, out)
	}

	code, _, errOut = runCLI(t, "tokenize", "--format", "xml", p)
	if code != 1 || !strings.Contains(errOut, "unknown format: xml") {
		t.Errorf("exit %d, stderr:\n%s", code, errOut)
	}
}

func TestCheckSummary(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.core", "~ a = 1;\n")
	b := writeSource(t, dir, "b.core", "~ b = ;\n")
	code, out, errOut := runCLI(t, "check", "--color", "off", a, b)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if out != "checked 2 files, 1 failed\n" {
		t.Errorf("unexpected summary %q", out)
	}
	if !strings.Contains(errOut, "expected atom") {
		t.Errorf("missing diagnostics:\n%s", errOut)
	}
}

func TestVersionJSON(t *testing.T) {
	code, out, _ := runCLI(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var p versionPayload
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatal(err)
	}
	if p.Tool != "corec" || p.Version == "" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestTraceFlag(t *testing.T) {
	p := writeSource(t, t.TempDir(), "ok.core", "~ x = 1;")
	code, _, errOut := runCLI(t, "parse", "--trace", "-", p)
	if code != 0 {
		t.Fatalf("exit %d, stderr:\n%s", code, errOut)
	}
	if !strings.Contains(errOut, "→ parse-file") {
		t.Errorf("no trace on stderr:\n%s", errOut)
	}
}

func TestOpenDepth(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"~ x = 1;", 0},
		{"int f() {", 1},
		{"int f() { g(", 2},
		{"~ s = \"{\";", 0},
		{"int f() { } // {", 0},
		{"}", -1},
	}
	for _, tt := range tests {
		if got := openDepth(tt.src); got != tt.want {
			t.Errorf("openDepth(%q) = %d, want %d", tt.src, got, tt.want)
		}
	}
}
