// Package main is the entry point for the list-files application.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/list-files/internal/config"
	"github.com/joe/list-files/internal/logging"
	actionable "github.com/joe/list-files/pkg/errors"
	"github.com/joe/list-files/pkg/filesystem"
	"github.com/joe/list-files/pkg/walker"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fail(err)
	}

	logging.SetupLogger(cfg.Verbosity())

	if err := run(cfg, os.Stdout); err != nil {
		fail(err)
	}
}

// run enumerates every configured root in order, grouping consecutive
// roots that share a backend so one walker (and, for SFTP, one
// connection) covers the whole group.
func run(cfg *config.Config, out *os.File) error {
	ctx := walker.Context{
		FollowSymlinks: cfg.FollowSymlinks,
		Excludes:       cfg.Exclude,
	}

	groups, err := groupRoots(cfg.Paths)
	if err != nil {
		return err
	}

	cache := make(map[string]filesystem.FS)
	var closers []func()
	defer func() {
		for _, closer := range closers {
			closer()
		}
	}()

	printer := newPrinter(out, cfg.Format)

	for _, group := range groups {
		fsys, ok := cache[group.key]
		if !ok {
			var closer func()
			fsys, _, closer, err = filesystem.CreateFileSystem(group.sample)
			if err != nil {
				return err
			}
			cache[group.key] = fsys
			if closer != nil {
				closers = append(closers, closer)
			}
		}

		files := walker.New(fsys, group.roots, ctx)
		for {
			path, ok := files.Next()
			if !ok {
				break
			}
			printer.print(path)
		}
		if err := files.Err(); err != nil {
			return err
		}
	}

	printer.summary(os.Stderr)

	return nil
}

// rootGroup is a maximal run of consecutive starting paths that live on
// the same backend. Grouping preserves the caller's top-level order.
type rootGroup struct {
	key    string   // "" for local, user@host:port for SFTP
	sample string   // original path string, used to create the backend
	roots  []string // translated starting paths
}

func groupRoots(paths []string) ([]rootGroup, error) {
	var groups []rootGroup

	for _, p := range paths {
		parsed, err := filesystem.ParsePath(p)
		if err != nil {
			return nil, err
		}

		key := ""
		root := parsed.LocalPath
		if parsed.IsRemote {
			key = fmt.Sprintf("%s@%s:%d", parsed.User, parsed.Host, parsed.Port)
			root = parsed.Path
		}

		if len(groups) > 0 && groups[len(groups)-1].key == key {
			last := &groups[len(groups)-1]
			last.roots = append(last.roots, root)
			continue
		}

		groups = append(groups, rootGroup{key: key, sample: p, roots: []string{root}})
	}

	return groups, nil
}

// printer writes enumerated paths in the configured output format.
type printer struct {
	out       io.Writer
	format    config.OutputFormat
	count     int
	pathStyle lipgloss.Style
	sumStyle  lipgloss.Style
	styled    bool
}

func newPrinter(out *os.File, format config.OutputFormat) *printer {
	// Styling only applies to pretty output on a real terminal; piped
	// output stays machine-readable.
	styled := format == config.Pretty && term.IsTerminal(int(out.Fd()))

	return &printer{
		out:       out,
		format:    format,
		styled:    styled,
		pathStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		sumStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
	}
}

func (p *printer) print(path string) {
	p.count++

	switch {
	case p.format == config.Nul:
		fmt.Fprintf(p.out, "%s\x00", path)
	case p.styled:
		fmt.Fprintln(p.out, p.pathStyle.Render(path))
	default:
		fmt.Fprintln(p.out, path)
	}
}

func (p *printer) summary(errOut io.Writer) {
	if p.format != config.Pretty {
		return
	}

	line := fmt.Sprintf("%d files", p.count)
	if p.styled {
		line = p.sumStyle.Render(line)
	}
	fmt.Fprintln(errOut, line)
}

// fail reports a fatal error with actionable suggestions and exits.
func fail(err error) {
	enriched := actionable.NewEnricher().Enrich(err, "")

	msg := "Error: " + enriched.Error()
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)

	if suggestions := actionable.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintln(os.Stderr, "Try these solutions:")
		fmt.Fprintln(os.Stderr, suggestions)
	}

	os.Exit(1)
}
