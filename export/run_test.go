package export

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"sbx/config"
	"sbx/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func setupExporter(t *testing.T) (context.Context, *exporter) {
	ctx, env := setupTestEnv(t)
	return ctx, newExporter(env, env.Log)
}

// chainScene returns scene with single sprite holding n consecutive MoveX
// commands 100ms each.
func chainScene(n, maxCommands int) string {
	var b strings.Builder
	b.WriteString("layers:\n  foreground:\n    - sprite:\n        path: sb/dot.png\n")
	fmt.Fprintf(&b, "        max_commands: %d\n        commands:\n", maxCommands)
	for i := range n {
		fmt.Fprintf(&b, "          - {type: moveX, start: %d, end: %d, from: %d, to: %d}\n", i*100, (i+1)*100, i, i+1)
	}
	return b.String()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected output %s: %v", path, err)
	}
	return string(data)
}

// listFiles returns slash separated paths of all regular files under dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, _ := filepath.Rel(dir, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Unable to list %s: %v", dir, err)
	}
	slices.Sort(files)
	return files
}

func TestProcess_NonExistentPath(t *testing.T) {
	ctx, x := setupExporter(t)

	err := x.process(ctx, "/nonexistent/path/intro.yaml", t.TempDir())
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	if !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, x := setupExporter(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	tmpDir := t.TempDir()
	if err := x.process(cancelCtx, tmpDir, tmpDir); err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestProcess_SceneFile(t *testing.T) {
	ctx, x := setupExporter(t)
	src := filepath.Join(t.TempDir(), "intro.yaml")
	writeFile(t, src, chainScene(6, 4))
	dst := t.TempDir()

	if err := x.process(ctx, src, dst); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	out := readOutput(t, filepath.Join(dst, "intro.osb"))
	if n := strings.Count(out, "Sprite,Foreground,Centre,\"sb/dot.png\",320,240"); n != 2 {
		t.Errorf("sprite headers = %d, want 2 fragments:\n%s", n, out)
	}
	for _, line := range []string{"[Events]", " MX,0,0,100,0,1", " MX,0,500,600,5,6", "//Storyboard Sound Samples"} {
		if !strings.Contains(out, line) {
			t.Errorf("output does not contain %q", line)
		}
	}
	// temporary files must not be left behind
	if files := listFiles(t, dst); !slices.Equal(files, []string{"intro.osb"}) {
		t.Errorf("destination contains %v", files)
	}
}

func TestProcess_NoFragment(t *testing.T) {
	ctx, x := setupExporter(t)
	x.env.NoFragment = true
	src := filepath.Join(t.TempDir(), "intro.yaml")
	writeFile(t, src, chainScene(6, 4))
	dst := t.TempDir()

	if err := x.process(ctx, src, dst); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	out := readOutput(t, filepath.Join(dst, "intro.osb"))
	if n := strings.Count(out, "Sprite,"); n != 1 {
		t.Errorf("sprite headers = %d, want 1", n)
	}
	if n := strings.Count(out, " MX,"); n != 6 {
		t.Errorf("commands = %d, want 6", n)
	}
}

func TestProcess_ExistingOutput(t *testing.T) {
	ctx, x := setupExporter(t)
	src := filepath.Join(t.TempDir(), "intro.yaml")
	writeFile(t, src, chainScene(2, 0))
	dst := t.TempDir()
	writeFile(t, filepath.Join(dst, "intro.osb"), "old")

	err := x.process(ctx, src, dst)
	if err == nil || !strings.Contains(err.Error(), "output file already exists") {
		t.Fatalf("process() error = %v, want existing output error", err)
	}
	if out := readOutput(t, filepath.Join(dst, "intro.osb")); out != "old" {
		t.Errorf("existing output was modified: %q", out)
	}

	x.env.Overwrite = true
	if err := x.process(ctx, src, dst); err != nil {
		t.Fatalf("process() with overwrite error = %v", err)
	}
	if out := readOutput(t, filepath.Join(dst, "intro.osb")); !strings.HasPrefix(out, "[Events]") {
		t.Errorf("output was not replaced: %q", out)
	}
}

func TestProcess_InvalidScene(t *testing.T) {
	ctx, x := setupExporter(t)
	src := filepath.Join(t.TempDir(), "broken.yaml")
	writeFile(t, src, "layers:\n  foreground:\n    - sprite: {path: a.png, bogus: 1}\n")
	dst := t.TempDir()

	if err := x.process(ctx, src, dst); err == nil {
		t.Fatal("process() expected error for invalid scene")
	}
	if files := listFiles(t, dst); len(files) != 0 {
		t.Errorf("destination contains %v", files)
	}
}

func TestProcess_NotAScene(t *testing.T) {
	ctx, x := setupExporter(t)
	src := filepath.Join(t.TempDir(), "readme.txt")
	writeFile(t, src, "hello")

	err := x.process(ctx, src, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "not recognized") {
		t.Errorf("process() error = %v, want not recognized", err)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, x := setupExporter(t)
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "a.yaml"), chainScene(3, 0))
	writeFile(t, filepath.Join(srcDir, "maps", "b.yml"), chainScene(3, 0))
	writeFile(t, filepath.Join(srcDir, "maps", "broken.yaml"), "layers: [")
	writeFile(t, filepath.Join(srcDir, "readme.txt"), "not a scene")
	dst := t.TempDir()

	// failed scenes are logged, the rest is exported
	if err := x.process(ctx, srcDir, dst); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	want := []string{"a.osb", "maps/b.osb"}
	if files := listFiles(t, dst); !slices.Equal(files, want) {
		t.Errorf("destination contains %v, want %v", files, want)
	}

	t.Run("nodirs", func(t *testing.T) {
		x.env.NoDirs = true
		defer func() { x.env.NoDirs = false }()

		dst := t.TempDir()
		if err := x.process(ctx, srcDir, dst); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		want := []string{"a.osb", "b.osb"}
		if files := listFiles(t, dst); !slices.Equal(files, want) {
			t.Errorf("destination contains %v, want %v", files, want)
		}
	})
}

func TestProcess_DirectoryWithTail(t *testing.T) {
	ctx, x := setupExporter(t)
	srcDir := t.TempDir()

	err := x.process(ctx, filepath.Join(srcDir, "missing.yaml"), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("process() error = %v, want not found", err)
	}
}

func TestProcess_Archive(t *testing.T) {
	ctx, x := setupExporter(t)
	zipPath := filepath.Join(t.TempDir(), "pack.osz")
	writeTestZip(t, zipPath, map[string]string{
		"maps/easy.yaml":  chainScene(2, 0),
		"maps/hard.yaml":  chainScene(2, 0),
		"other/side.yaml": chainScene(2, 0),
		"sb/dot.png":      "png",
	})

	t.Run("whole archive", func(t *testing.T) {
		dst := t.TempDir()
		if err := x.process(ctx, zipPath, dst); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		want := []string{"maps/easy.osb", "maps/hard.osb", "other/side.osb"}
		if files := listFiles(t, dst); !slices.Equal(files, want) {
			t.Errorf("destination contains %v, want %v", files, want)
		}
	})

	t.Run("path inside archive", func(t *testing.T) {
		dst := t.TempDir()
		if err := x.process(ctx, filepath.Join(zipPath, "maps"), dst); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		want := []string{"maps/easy.osb", "maps/hard.osb"}
		if files := listFiles(t, dst); !slices.Equal(files, want) {
			t.Errorf("destination contains %v, want %v", files, want)
		}
	})
}

func TestProcess_OutputNameTemplate(t *testing.T) {
	ctx, x := setupExporter(t)
	x.env.Cfg.Export.OutputNameTemplate = "{{ .Name }}-{{ .Sprites }}x{{ .Fragments }}"
	src := filepath.Join(t.TempDir(), "intro.yaml")
	writeFile(t, src, "name: Intro\n"+chainScene(6, 4))
	dst := t.TempDir()

	if err := x.process(ctx, src, dst); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if files := listFiles(t, dst); !slices.Equal(files, []string{"Intro-1x2.osb"}) {
		t.Errorf("destination contains %v", files)
	}
}

func TestProcess_Report(t *testing.T) {
	ctx, x := setupExporter(t)
	tmpDir := t.TempDir()
	rpt, err := (&config.ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	x.env.Rpt = rpt

	src := filepath.Join(tmpDir, "intro.yaml")
	writeFile(t, src, chainScene(6, 4))
	if err := x.process(ctx, src, filepath.Join(tmpDir, "out")); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := zip.OpenReader(filepath.Join(tmpDir, "report.zip"))
	if err != nil {
		t.Fatalf("Unable to open report: %v", err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	for _, want := range []string{"MANIFEST", "scenes/001-intro.yaml", "scenes/001-fragments.txt", "scenes/001-result.osb"} {
		if !slices.Contains(names, want) {
			t.Errorf("report does not contain %s: %v", want, names)
		}
	}
}

func TestRun(t *testing.T) {
	ctx, env := setupTestEnv(t)
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "maps", "intro.yaml"), chainScene(6, 4))
	dst := t.TempDir()

	cmd := &cli.Command{Name: "export", Flags: Flags(), Action: Run}
	args := []string{"export", "--nodirs", "--no-fragment", "--force-zip-cp", "windows-1251", srcDir, dst}
	if err := cmd.Run(ctx, args); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !env.NoDirs || !env.NoFragment || env.Overwrite {
		t.Errorf("flags not applied: nodirs %v no-fragment %v overwrite %v", env.NoDirs, env.NoFragment, env.Overwrite)
	}
	if env.CodePage == nil {
		t.Error("code page was not set")
	}
	out := readOutput(t, filepath.Join(dst, "intro.osb"))
	if n := strings.Count(out, "Sprite,"); n != 1 {
		t.Errorf("sprite headers = %d, want 1 (fragmentation disabled)", n)
	}
}

func TestRun_NoSource(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	cmd := &cli.Command{Name: "export", Flags: Flags(), Action: Run}
	err := cmd.Run(ctx, []string{"export"})
	if err == nil || !strings.Contains(err.Error(), "no input source") {
		t.Errorf("Run() error = %v, want missing source", err)
	}
}
