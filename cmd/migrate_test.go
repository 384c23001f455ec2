package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestMigrateCommandHelp(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"migrate", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "transcriptions table") {
		t.Errorf("Expected help to describe the transcriptions table, got %q", buf.String())
	}
}

func TestMigrateCreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-test.db")
	viper.Set("database.path", dbPath)
	t.Cleanup(func() { viper.Set("database.path", nil) })

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"migrate"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Migrations applied") {
		t.Errorf("Expected migration confirmation, got %q", buf.String())
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Expected database file to exist: %v", err)
	}
}
