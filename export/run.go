// Package export locates scenes, fragments their sprites and writes storyboard
// scripts.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"sbx/archive"
	"sbx/fragment"
	"sbx/osb"
	"sbx/scene"
	"sbx/state"
)

// Flags returns command line flags understood by Run.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"},
		&cli.BoolFlag{Name: "no-fragment", Aliases: []string{"nf"}, Usage: "write sprites as they are, even when they exceed command limit"},
		&cli.StringFlag{Name: "force-zip-cp",
			Usage: "Force `ENCODING` for ALL non UTF-8 file names in processed archives (see IANA.org for character set names)"},
	}
}

// Run is the action of export subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite, env.NoFragment = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.Bool("no-fragment")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	cp := cmd.String("force-zip-cp")
	if len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Bool("fragmentation", env.Fragmentation()))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return newExporter(env, log).process(ctx, src, dst)
}

// exporter carries what is shared by all scenes of a single run. Scenes are
// processed one after another.
type exporter struct {
	env        *state.LocalEnv
	log        *zap.Logger
	fragmenter *fragment.Fragmenter
	format     osb.NumberFormat
	// scenes processed so far, used to keep report entries unique
	seq int
}

func newExporter(env *state.LocalEnv, log *zap.Logger) *exporter {
	return &exporter{
		env:        env,
		log:        log,
		fragmenter: fragment.New(env.Cfg.Export.MaxCommandCount, log.Named("fragment")),
		format:     osb.NumberFormat{Decimals: env.Cfg.Export.Numbers.Decimals},
	}
}

// process determines the input type (directory, archive, or single file) and
// processes accordingly.
func (x *exporter) process(ctx context.Context, src, dst string) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := x.processDir(ctx, head, dst); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArc, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArc {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := x.processArchive(ctx, head, filepath.ToSlash(tail), "", dst); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if isSceneFile(head) && len(tail) == 0 {
			// single scene requested explicitly, its failure is the result
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to process file: %w", err)
			}
			defer file.Close()
			return x.processScene(ctx, file, filepath.Base(head), dst)
		}
		return fmt.Errorf("input was not recognized as scene or archive (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding scenes and archives and processes
// them. Failures of individual scenes are logged and do not stop the walk.
func (x *exporter) processDir(ctx context.Context, dir, dst string) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			x.log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			x.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		if isSceneFile(path) {
			count++
			file, err := os.Open(path)
			if err != nil {
				x.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
				return nil
			}
			defer file.Close()

			if err := x.processScene(ctx, file, rel, dst); err != nil {
				x.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		isArc, err := isArchiveFile(path)
		if err != nil {
			x.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !isArc {
			x.log.Debug("Skipping file, not recognized as scene or archive", zap.String("file", path))
			return nil
		}
		count++
		if err := x.processArchive(ctx, path, "", filepath.Dir(rel), dst); err != nil {
			x.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks all scenes inside archive under "pathIn" and processes
// them. Nested archives are not looked into.
func (x *exporter) processArchive(ctx context.Context, path, pathIn, pathOut, dst string) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			x.log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	return archive.Walk(path, pathIn, x.env.CodePage, func(arc string, e archive.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isSceneFile(e.Name) {
			x.log.Debug("Skipping file, not recognized as scene", zap.String("archive", arc), zap.String("file", e.Name))
			return nil
		}

		count++

		r, err := e.File.Open()
		if err != nil {
			x.log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := x.processScene(ctx, r, filepath.Join(pathOut, filepath.FromSlash(e.Name)), dst); err != nil {
			x.log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	})
}

// processScene exports single scene. "src" is the source path relative to the
// original input (just base name when a file was given directly), "dst" is the
// destination directory.
func (x *exporter) processScene(ctx context.Context, r io.Reader, src, dst string) (rerr error) {
	x.seq++
	seq := x.seq

	var outputName string

	x.log.Info("Export starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			x.log.Error("Export ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("export panic: %v", r)
		} else if rerr == nil {
			x.log.Info("Export completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read scene (%s): %w", src, err)
	}
	x.env.Rpt.StoreData(fmt.Sprintf("scenes/%03d-%s", seq, filepath.Base(src)), data)

	sb, err := scene.Load(bytes.NewReader(data), src, x.log)
	if err != nil {
		return err
	}

	out, st := sb, stats{Sprites: sb.Len(), Fragments: sb.Len()}
	if x.env.Fragmentation() {
		if out, st, err = fragmentStoryboard(ctx, sb, x.fragmenter, x.env.Cfg.Export.Workers); err != nil {
			return fmt.Errorf("unable to fragment scene (%s): %w", src, err)
		}
	}
	x.log.Debug("Scene prepared", zap.String("id", sb.ID), zap.String("name", sb.Name),
		zap.Int("sprites", st.Sprites), zap.Int("fragments", st.Fragments))

	if x.env.Rpt != nil {
		x.env.Rpt.StoreData(fmt.Sprintf("scenes/%03d-fragments.txt", seq), []byte(out.String()))
	}

	outputName = buildOutputPath(newValues(src, out, st), src, dst, x.env)

	if _, err := os.Stat(outputName); err == nil {
		if !x.env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		x.log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := writeScript(out, outputName, x.format); err != nil {
		return fmt.Errorf("unable to export scene (%s): %w", src, err)
	}

	// snapshot, later scenes may overwrite the same output
	if err := x.env.Rpt.StoreCopy(fmt.Sprintf("scenes/%03d-result%s", seq, outputExt), outputName); err != nil {
		x.log.Warn("Unable to store result in debug report", zap.String("file", outputName), zap.Error(err))
	}
	return nil
}
