package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[filepath.ToSlash(f.Name)] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	rc := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := rc.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	scene := filepath.Join(dir, "intro.yaml")
	if err := os.WriteFile(scene, []byte("name: intro\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("config.yaml", scene)
	r.StoreData("fragments.txt", []byte("sprite \"sb/dot.png\"\n"))
	if err := r.StoreCopy("scene", scene); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// second copy under the same name gets versioned
	if err := r.StoreCopy("scene", scene); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	snapshots := r.snapshots
	if snapshots == "" {
		t.Fatal("snapshot directory was not created")
	}
	// changes after copy do not affect the report
	if err := os.WriteFile(scene, []byte("name: changed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if r.Name() != rc.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), rc.Destination)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, rc.Destination)
	if !strings.Contains(files["MANIFEST"], "fragments.txt") {
		t.Errorf("manifest is missing entries:\n%s", files["MANIFEST"])
	}
	if files["fragments.txt"] != "sprite \"sb/dot.png\"\n" {
		t.Errorf("fragments.txt = %q", files["fragments.txt"])
	}
	if files["config.yaml"] != "name: changed\n" {
		t.Errorf("stored path must be read at close time, got %q", files["config.yaml"])
	}
	copies := 0
	for name, content := range files {
		if strings.HasPrefix(name, "scene") {
			copies++
			if content != "name: intro\n" {
				t.Errorf("%s = %q, want content at copy time", name, content)
			}
		}
	}
	if copies != 2 {
		t.Errorf("found %d scene copies, want 2", copies)
	}

	if _, err := os.Stat(snapshots); !os.IsNotExist(err) {
		os.RemoveAll(snapshots)
		t.Errorf("snapshot directory %s was not removed", snapshots)
	}
}

func TestReport_StoreDuplicatePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("a", []byte("1"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overwrite")
		}
	}()
	r.StoreData("a", []byte("2"))
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	// storing into nil report is a no-op
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() = %q", r.Name())
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReport_StoreCopyErrors(t *testing.T) {
	dir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer r.Close()

	if err := r.StoreCopy("missing", filepath.Join(dir, "missing.osb")); err == nil {
		t.Error("StoreCopy() of missing file should fail")
	}
	if err := r.StoreCopy("dir", dir); err == nil {
		t.Error("StoreCopy() of directory should fail")
	}
	if len(r.entries) != 0 {
		t.Errorf("failed copies left entries: %v", r.entries)
	}
}
