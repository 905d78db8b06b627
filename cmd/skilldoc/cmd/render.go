package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sdd-stack/skilldoc/internal/config"
	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
	"github.com/sdd-stack/skilldoc/internal/logging"
	"github.com/sdd-stack/skilldoc/internal/render"
)

var (
	renderFormat string
	renderOutput string
	renderWidth  int
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <path>",
	Short: "Render a document",
	Long: `Render a methodology document in the requested format.

Formats:
- markdown: canonical markdown (the formatter's output)
- html: an HTML fragment
- text: plain text with markup stripped
- term: styled output for an ANSI terminal

With --watch, the document is re-rendered whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format (default from config)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "write to file instead of stdout")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "wrap width for text and term output")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "re-render when the file changes")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]
	cfg := loadConfig()

	format, opts, err := renderSettings(cfg)
	if err != nil {
		return err
	}

	if !renderWatch {
		return renderOnce(cmd, path, format, opts)
	}
	return watchAndRender(cmd, path, format, opts, cfg)
}

// renderSettings resolves format and options from flags and config, flags
// winning.
func renderSettings(cfg *config.Config) (render.Format, render.Options, error) {
	name := renderFormat
	if name == "" {
		name = cfg.Render.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return "", render.Options{}, err
	}

	opts := render.Options{
		Width:     cfg.Render.Width,
		TermStyle: cfg.Render.TermStyle,
	}
	if renderWidth > 0 {
		opts.Width = renderWidth
	}
	return format, opts, nil
}

func renderOnce(cmd *cobra.Command, path string, format render.Format, opts render.Options) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	out, err := render.Render(doc, format, opts)
	if err != nil {
		return err
	}

	if renderOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(renderOutput, []byte(out), 0644); err != nil {
		return errors.IOWriteError(renderOutput, err)
	}
	return nil
}

// watchAndRender re-renders on every write to the document until
// interrupted. The watch is on the containing directory because editors
// commonly replace files by rename, which drops a watch on the file
// itself.
func watchAndRender(cmd *cobra.Command, path string, format render.Format, opts render.Options, cfg *config.Config) error {
	logger, closer := newLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}
	logger = logging.WithDocument(logging.WithFormat(logger, string(format)), path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := renderOnce(cmd, path, format, opts); err != nil {
		logger.Error("initial render failed", "error", err)
	}

	logger.Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || !event.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("document changed, re-rendering")
			if err := renderOnce(cmd, path, format, opts); err != nil {
				logger.Error("render failed", "error", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", werr)
		}
	}
}
