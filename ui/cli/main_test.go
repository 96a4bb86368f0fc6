// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/internal/backup"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/site"
)

const testContent = `
name: Test Folio
pages:
  - slug: home
    title: Home
    sections:
      - id: about
        kind: text
        body: ["hello"]
  - slug: app
    title: App
    subtitle: A case study
    sections:
      - id: images
        kind: gallery
        gallery:
          - {image: a.png, alt: First, caption: One}
          - {image: b.png, alt: Second, caption: Two}
`

// testEnv isolates config discovery and the working directory, and writes
// the test content with its images.
func testEnv(t *testing.T) (dir, contentPath string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Chdir(dir)

	contentPath = filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(contentPath, []byte(testContent), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.png", "b.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir, contentPath
}

// runCLI executes a fresh root command and returns everything it printed.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	_, path := testEnv(t)

	out, err := runCLI(t, "", "validate", "--content", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if want := i18n.T("cli.validate_ok", 2, 2, 2); !strings.Contains(out, want) {
		t.Fatalf("expected %q in output, got %q", want, out)
	}
}

func TestValidate_InvalidContent(t *testing.T) {
	dir, _ := testEnv(t)
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("pages:\n  - slug: home\n    sections:\n      - id: g\n        kind: gallery\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, "", "validate", "--content", bad); err == nil {
		t.Fatalf("expected an error for a gallery without images")
	}
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	dir, path := testEnv(t)

	if _, err := runCLI(t, "", "validate", "--content", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "xdg", "folio", "folio.yaml"))
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Fatalf("default config lacks language:\n%s", data)
	}
	// flags of a single run are not persisted
	if strings.Contains(string(data), path) {
		t.Fatalf("default config should not record the --content flag:\n%s", data)
	}
}

func TestRootDumpsWithoutTerminal(t *testing.T) {
	_, path := testEnv(t)

	out, err := runCLI(t, "", "--content", path)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	for _, want := range []string{"Home", "App", "A case study"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump lacks %q:\n%s", want, out)
		}
	}
}

func TestExport(t *testing.T) {
	dir, path := testEnv(t)
	target := filepath.Join(dir, "public")

	out, err := runCLI(t, "", "export", target, "--content", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if want := i18n.T("cli.export_done", 2, target); !strings.Contains(out, want) {
		t.Fatalf("expected %q in output, got %q", want, out)
	}
	if strings.Contains(out, "not found") {
		t.Fatalf("all images exist, got %q", out)
	}

	p, err := content.Source{Path: path}.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, route := range []string{"/", "/app/", site.LightboxPath(p, "app", "images", 1)} {
		index := filepath.Join(target, filepath.FromSlash(strings.Trim(route, "/")), "index.html")
		if _, err := os.Stat(index); err != nil {
			t.Fatalf("missing %s: %v", route, err)
		}
	}
	if _, err := os.Stat(filepath.Join(target, "assets", "b.png")); err != nil {
		t.Fatalf("image not copied: %v", err)
	}
}

func TestExport_DirFromFlag(t *testing.T) {
	dir, path := testEnv(t)
	target := filepath.Join(dir, "flagged")

	if _, err := runCLI(t, "", "export", "--export.dir", target, "--content", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "index.html")); err != nil {
		t.Fatalf("export.dir flag ignored: %v", err)
	}
}

func TestDBImportExport(t *testing.T) {
	dir, path := testEnv(t)
	dsn := filepath.Join(dir, "folio.db")

	out, err := runCLI(t, "", "db", "import", path, "--database.dsn", dsn)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if want := i18n.T("cli.db_imported", 2, "sqlite"); !strings.Contains(out, want) {
		t.Fatalf("expected %q in output, got %q", want, out)
	}

	exported := filepath.Join(dir, "exported.yaml")
	if _, err := runCLI(t, "", "db", "export", exported, "--database.dsn", dsn); err != nil {
		t.Fatalf("export: %v", err)
	}

	want, err := content.Source{Path: path}.Load()
	if err != nil {
		t.Fatal(err)
	}
	got, err := content.Source{Path: exported}.Load()
	if err != nil {
		t.Fatalf("exported document does not load: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("stored portfolio differs (-want +got):\n%s", diff)
	}
}

func TestDBExport_Empty(t *testing.T) {
	dir, _ := testEnv(t)

	_, err := runCLI(t, "", "db", "export", "--database.dsn", filepath.Join(dir, "empty.db"))
	if err == nil || err.Error() != i18n.T("cli.db_empty") {
		t.Fatalf("expected the empty database hint, got %v", err)
	}
}

func TestExport_FromDB(t *testing.T) {
	dir, path := testEnv(t)
	dsn := filepath.Join(dir, "folio.db")
	if _, err := runCLI(t, "", "db", "import", path, "--database.dsn", dsn); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "public")
	if _, err := runCLI(t, "", "export", target, "--from-db", "--database.dsn", dsn, "--content", path); err != nil {
		t.Fatalf("export from db: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "app", "index.html")); err != nil {
		t.Fatalf("page from the database not exported: %v", err)
	}
}

func TestBackupRestore(t *testing.T) {
	dir, path := testEnv(t)
	source := filepath.Join(dir, "source.db")
	if _, err := runCLI(t, "", "db", "import", path, "--database.dsn", source); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(dir, "snapshot.json")
	out, err := runCLI(t, "", "backup", file, "--database.dsn", source)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	written := backup.WithSuffix(file)
	if !strings.Contains(out, written) {
		t.Fatalf("backup should report %s, got %q", written, out)
	}

	target := filepath.Join(dir, "target.db")
	if _, err := runCLI(t, "", "restore", written, "--yes", "--database.dsn", target); err != nil {
		t.Fatalf("restore: %v", err)
	}

	exported := filepath.Join(dir, "restored.yaml")
	if _, err := runCLI(t, "", "db", "export", exported, "--database.dsn", target); err != nil {
		t.Fatal(err)
	}
	got, err := content.Source{Path: exported}.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Test Folio" || len(got.Pages) != 2 {
		t.Fatalf("unexpected restored portfolio %q with %d pages", got.Name, len(got.Pages))
	}
}

func TestBackup_FallsBackToContent(t *testing.T) {
	dir, path := testEnv(t)
	file := filepath.Join(dir, "content.json.zst")

	if _, err := runCLI(t, "", "backup", file, "--content", path, "--database.dsn", filepath.Join(dir, "empty.db")); err != nil {
		t.Fatalf("backup: %v", err)
	}
	snap, err := backup.Read(file)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Portfolio.Name != "Test Folio" {
		t.Fatalf("expected the content file in the backup, got %q", snap.Portfolio.Name)
	}
}

func TestRestore_Declined(t *testing.T) {
	dir, path := testEnv(t)
	dsn := filepath.Join(dir, "folio.db")
	file := filepath.Join(dir, "b.json.zst")
	if _, err := runCLI(t, "", "backup", file, "--content", path, "--database.dsn", dsn); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "no\n", "restore", file, "--database.dsn", dsn)
	if err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestConfigInit_WritesEffectiveSettings(t *testing.T) {
	dir, _ := testEnv(t)

	out, err := runCLI(t, "", "config", "init", "--language", "de")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	path := filepath.Join(dir, "xdg", "folio", "folio.yaml")
	if !strings.Contains(out, path) {
		t.Fatalf("expected path in output, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "language: de") {
		t.Fatalf("flag not persisted:\n%s", data)
	}
}

func TestConfigFlag_MissingFile(t *testing.T) {
	dir, _ := testEnv(t)

	_, err := runCLI(t, "", "validate", "--config", filepath.Join(dir, "nope.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	testEnv(t)

	out, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestPromptForConfirmation(t *testing.T) {
	var out bytes.Buffer
	got := promptForConfirmation(strings.NewReader("  YES \n"), &out, "sure? ")
	if got != "yes" {
		t.Fatalf("expected normalised answer, got %q", got)
	}
	if out.String() != "sure? " {
		t.Fatalf("prompt not written, got %q", out.String())
	}
	if got := promptForConfirmation(strings.NewReader(""), io.Discard, ""); got != "" {
		t.Fatalf("expected empty answer at EOF, got %q", got)
	}
}
