package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"
)

func TestReadInputsRepeatedStdin(t *testing.T) {
	_, err := readInputs(nil, []string{"base", "-", "-"})
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("readInputs() error = %v, want %v", err, cli.ErrUsage)
	}
}

func TestReadInputsFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	if err := os.WriteFile(a, []byte("base"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", a, err)
	}
	if err := os.WriteFile(b, []byte("delta"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", b, err)
	}
	got, err := readInputs(nil, []string{a, b})
	if err != nil {
		t.Fatalf("readInputs() error = %v", err)
	}
	if len(got) != 2 || string(got[0]) != "base" || string(got[1]) != "delta" {
		t.Errorf("readInputs() = %q, want [base delta]", got)
	}
}
