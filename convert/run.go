// Package convert implements layout command: reads HTML documents, builds
// markup trees, interprets them and writes resulting layout dumps.
package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"mdflow/archive"
	"mdflow/common"
	"mdflow/interpret"
	"mdflow/layout"
	"mdflow/state"
	"mdflow/tree"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
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
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Format, err = common.ParseOutputFmt(cmd.String("to"))
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		env.Format = common.OutputFmtText
	}
	env.NoDirs, env.Overwrite, env.Transliterate = cmd.Bool("nodirs"), cmd.Bool("overwrite"), cmd.Bool("transliterate")
	env.Parallel = cmd.Int("parallel")

	// applies to documents without BOM and to non UTF-8 names in archives
	if cp := cmd.String("force-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully decoding documents and archive names", zap.String("charset", n))
		}
	}

	in, err := env.Interpreter()
	if err != nil {
		return fmt.Errorf("unable to prepare interpreter: %w", err)
	}

	c := newConverter(env, in, dst, log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Processing completed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("documents", c.documents),
			zap.Int("failed", c.failed),
			zap.String("read", humanize.Bytes(c.read)),
			zap.String("written", humanize.Bytes(c.written)))
	}(time.Now())

	return c.process(ctx, src)
}

// converter carries destination and statistics through single layout
// command run.
type converter struct {
	env *state.LocalEnv
	log *zap.Logger
	in  *interpret.Interpreter
	dst string

	documents, failed int
	read, written     uint64
}

func newConverter(env *state.LocalEnv, in *interpret.Interpreter, dst string, log *zap.Logger) *converter {
	return &converter{env: env, log: log, in: in, dst: dst}
}

// process determines the input type (directory, archive with optional path
// inside, or single file) and processes accordingly.
func (c *converter) process(ctx context.Context, src string) error {
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
			if err := c.processDir(ctx, head); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := c.processArchive(ctx, head, filepath.ToSlash(tail), ""); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		markup, enc, err := isMarkupFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if markup && len(tail) == 0 {
			if err := c.processFile(ctx, head, filepath.Base(head), enc); err != nil {
				c.log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
			}
			break
		}
		return fmt.Errorf("input was not recognized as HTML document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding HTML documents and archives and
// processes them in natural name order.
func (c *converter) processDir(ctx context.Context, dir string) error {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			c.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Slice(paths, func(i, j int) bool { return natural.Less(paths[i], paths[j]) })

	count := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		isArchive, err := isArchiveFile(path)
		if err != nil {
			c.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if isArchive {
			count++
			if err := c.processArchive(ctx, path, "", filepath.Dir(rel)); err != nil {
				c.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			continue
		}

		markup, enc, err := isMarkupFile(path)
		if err != nil {
			c.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !markup {
			c.log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			continue
		}
		count++
		if err := c.processFile(ctx, path, rel, enc); err != nil {
			c.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
	}
	if count == 0 {
		c.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return nil
}

func (c *converter) processFile(ctx context.Context, fname, src string, enc srcEncoding) error {
	file, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer file.Close()

	if c.env.Rpt != nil {
		if err := c.env.Rpt.StoreCopy(path.Join("documents", filepath.ToSlash(src)), fname); err != nil {
			c.log.Warn("Unable to store source document in report", zap.String("from", src), zap.Error(err))
		}
	}
	return c.processDocument(ctx, selectReader(file, enc, c.env.CodePage), src)
}

// processArchive walks all HTML documents inside archive under "pathIn".
// Outputs are placed under "pathOut" relative to destination.
func (c *converter) processArchive(ctx context.Context, path, pathIn, pathOut string) error {
	count := 0
	err := archive.Walk(ctx, path, pathIn, func(name string, f *zip.File) error {
		r, err := f.Open()
		if err != nil {
			c.log.Error("Unable to process file in archive",
				zap.String("archive", name), zap.String("file", f.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		pr, enc, markup, err := peekEncoding(r)
		if err != nil {
			c.log.Warn("Skipping file in archive",
				zap.String("archive", name), zap.String("path", f.Name), zap.Error(err))
			return nil
		}
		if !markup {
			c.log.Debug("Skipping file, not recognized as document", zap.String("archive", name), zap.String("file", f.Name))
			return nil
		}
		count++

		pathInArchive := f.Name
		if cp := c.env.CodePage; cp != nil && f.NonUTF8 {
			if n, err := cp.NewDecoder().String(pathInArchive); err == nil {
				pathInArchive = n
			} else {
				c.log.Warn("Unable to convert archive name from specified encoding", zap.String("path", pathInArchive), zap.Error(err))
			}
		}
		if err := c.processDocument(ctx, selectReader(pr, enc, c.env.CodePage), filepath.Join(pathOut, filepath.FromSlash(pathInArchive))); err != nil {
			c.log.Error("Unable to process file in archive",
				zap.String("archive", name), zap.String("file", f.Name), zap.Error(err))
		}
		return nil
	})
	if err == nil && count == 0 {
		c.log.Debug("Nothing to process", zap.String("archive", path), zap.String("path", pathIn))
	}
	return err
}

// processDocument runs single document through both stages. "src" is path
// of the document relative to the source root, including file name.
func (c *converter) processDocument(ctx context.Context, r io.Reader, src string) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	var outputName string

	c.log.Info("Layout starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			c.log.Error("Layout ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("layout panic: %v", r)
		}
		if rerr != nil {
			c.failed++
			return
		}
		c.documents++
		c.log.Info("Layout completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read document (%s): %w", src, err)
	}
	c.read += uint64(len(data))

	t := tree.Parse(bytes.NewReader(data), c.log)
	if issues := t.Issues(); len(issues) > 0 {
		c.log.Warn("Document markup is malformed", zap.String("from", src), zap.Int("issues", len(issues)), zap.Error(t.Err()))
	}
	elems := c.in.Interpret(t)

	out, err := c.render(elems)
	if err != nil {
		return fmt.Errorf("unable to render layout: %w", err)
	}

	outputName = buildOutputPath(src, c.dst, c.env)
	if err := c.write(outputName, out); err != nil {
		return err
	}

	if c.env.Rpt != nil {
		name := path.Join("documents", filepath.ToSlash(src))
		c.env.Rpt.StoreData(name+".tree.txt", []byte(t.String()))
		c.env.Rpt.StoreData(name+c.env.Format.Ext(), out)
	}
	return nil
}

func (c *converter) render(elems []layout.Element) ([]byte, error) {
	switch c.env.Format {
	case common.OutputFmtYaml:
		var buf bytes.Buffer
		if err := layout.EncodeYAML(&buf, elems); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return []byte(layout.Dump(elems)), nil
	}
}

func (c *converter) write(outputName string, data []byte) error {
	if _, err := os.Stat(outputName); err == nil {
		if !c.env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		c.log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	c.written += uint64(len(data))
	return nil
}
