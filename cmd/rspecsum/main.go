// rspecsum summarizes RSpec JSON results for GitHub Actions.
//
// Usage, as a workflow step after one or more `rspec --format json --out rspec-N.json` runs:
//
//	- run: rspecsum
//	  env:
//	    PATTERN: tmp/rspec/*.json
//
// It appends a markdown report to $GITHUB_STEP_SUMMARY and a failing_tests
// multi-line output to $GITHUB_OUTPUT. There are no flags; see package
// internal/config for the environment variables it reads.
//
// Exit codes: 0 on success (even when examples failed), 1 when results
// cannot be read or sinks cannot be written, 2 on configuration errors.
package main

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/dkoosis/rspecsum/internal/config"
	"github.com/dkoosis/rspecsum/internal/version"
	"github.com/dkoosis/rspecsum/pkg/actions"
	"github.com/dkoosis/rspecsum/pkg/mapper"
	"github.com/dkoosis/rspecsum/pkg/pattern"
	"github.com/dkoosis/rspecsum/pkg/render"
	"github.com/dkoosis/rspecsum/pkg/rspecjson"
)

// OutputName is the step output that carries the failure list.
const OutputName = "failing_tests"

func main() {
	os.Exit(run(config.OSGetenv, os.Stdout, os.Stderr))
}

func run(getenv config.Getenv, stdout, stderr io.Writer) int {
	log := newLogger(stderr)

	cfg, err := config.Load(getenv)
	if err != nil {
		log.WithError(err).Error("rspecsum: configuration")
		return 2
	}
	log.SetLevel(cfg.LogLevel)
	log.WithFields(logrus.Fields{
		"version":        version.String(),
		"pattern":        cfg.Pattern,
		"pattern_source": cfg.PatternSource,
		"config_file":    cfg.ConfigFile,
	}).Debug("starting")

	patterns, err := summarize(cfg, log)
	if err != nil {
		log.WithError(err).Error("rspecsum: summarizing results")
		return 1
	}

	if err := actions.AppendSummary(cfg.SummaryPath, render.NewMarkdown().Render(patterns)); err != nil {
		log.WithError(err).Error("rspecsum: writing step summary")
		return 1
	}
	if err := actions.AppendOutput(cfg.OutputPath, OutputName, render.NewFailureList().Render(patterns)); err != nil {
		log.WithError(err).Error("rspecsum: writing step output")
		return 1
	}

	if r := selectRenderer(cfg, stdout); r != nil {
		if _, err := io.WriteString(stdout, r.Render(patterns)); err != nil {
			log.WithError(err).Warn("rspecsum: echoing summary")
		}
	}
	return 0
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

// summarize collects every matching result file and maps it to patterns.
func summarize(cfg *config.Config, log logrus.FieldLogger) ([]pattern.Pattern, error) {
	base, fsys, glob := resultFS(cfg.Pattern)
	agg, err := rspecjson.Collect(fsys, glob)
	if err != nil {
		return nil, err
	}
	for _, f := range agg.Files {
		log.WithField("file", path.Join(base, f)).Debug("read result file")
	}
	log.WithFields(logrus.Fields{
		"files":    len(agg.Files),
		"examples": agg.TotalExamples,
		"failures": agg.TotalFailures,
		"pending":  agg.TotalPending,
		"runtime":  rspecjson.FormatDuration(agg.MaxRuntime),
	}).Info("aggregated results")
	return mapper.FromAggregate(agg, cfg.BaseURL()), nil
}

// resultFS splits pattern into the directory holding its static prefix and
// the glob to apply inside it, so absolute patterns work with fs.FS.
func resultFS(pattern string) (string, fs.FS, string) {
	base, glob := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return base, os.DirFS(filepath.FromSlash(base)), glob
}

// selectRenderer returns the stdout renderer for cfg.Format, or nil for none.
func selectRenderer(cfg *config.Config, w io.Writer) render.Renderer {
	switch resolveFormat(cfg.Format, w) {
	case "none":
		return nil
	case "json":
		return render.NewJSON(version.Version)
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(cfg.Theme)
		if cfg.NoColor {
			theme = render.MonoTheme()
		}
		width, _ := termSize(w)
		return render.NewTerminal(theme, width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return "terminal"
	}
	return "llm"
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
