package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gardenquote/config"
	"gardenquote/services"
	"gardenquote/store"
)

func TestPriceListCommand(t *testing.T) {
	q, err := services.NewQuoter(config.Default(), store.NewMemory())
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "tarifs.pdf")

	cmd := NewPriceListCommand(q)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--out", out})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
	if !strings.Contains(stdout.String(), "12 items") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestPriceListCommand_RejectsArgs(t *testing.T) {
	q, _ := services.NewQuoter(config.Default(), store.NewMemory())
	cmd := NewPriceListCommand(q)
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
