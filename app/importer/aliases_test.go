package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeAliasFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write alias file: %v", err)
	}
	return path
}

func TestLoadAliases(t *testing.T) {
	path := writeAliasFile(t, `
keywords:
  roles:
    name: ["suchanfragen"]
    clicks: ["klicks"]
  sheets: ["suchanfragen"]
pages:
  roles:
    name: ["seiten"]
`)

	aliases, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("LoadAliases failed: %v", err)
	}

	if got := aliases.Roles[TableKeywords][RoleName]; len(got) != 1 || got[0] != "suchanfragen" {
		t.Errorf("Unexpected keyword name aliases: %v", got)
	}
	if got := aliases.Roles[TableKeywords][RoleClicks]; len(got) != 1 || got[0] != "klicks" {
		t.Errorf("Unexpected clicks aliases: %v", got)
	}
	if got := aliases.Sheets[TableKeywords]; len(got) != 1 {
		t.Errorf("Unexpected sheet aliases: %v", got)
	}
	if got := aliases.Roles[TablePages][RoleName]; len(got) != 1 || got[0] != "seiten" {
		t.Errorf("Unexpected page name aliases: %v", got)
	}
}

func TestLoadAliases_RejectsUnknownKind(t *testing.T) {
	path := writeAliasFile(t, `
widgets:
  roles:
    name: ["gadget"]
`)

	if _, err := LoadAliases(path); err == nil {
		t.Error("Expected an error for an unknown table kind")
	}
}

func TestLoadAliases_RejectsUnknownRole(t *testing.T) {
	path := writeAliasFile(t, `
keywords:
  roles:
    bounce_rate: ["bounces"]
`)

	if _, err := LoadAliases(path); err == nil {
		t.Error("Expected an error for an unknown role")
	}
}

func TestLoadAliases_MissingFile(t *testing.T) {
	if _, err := LoadAliases(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
