package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fmckeogh/isla/pkg/cache"
	islaerrors "github.com/fmckeogh/isla/pkg/errors"
	"github.com/fmckeogh/isla/pkg/io"
	"github.com/fmckeogh/isla/pkg/observability"
	"github.com/fmckeogh/isla/pkg/render/dot"
)

// Output formats supported by the render command.
const (
	formatDOT = "dot" // DOT source, no Graphviz invocation
	formatSVG = "svg"
	formatPNG = "png"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path ("-" for stdout)
	execution int    // index of the candidate execution to draw
	relations string // comma-separated draw list override
	format    string // output format: "dot", "svg", or "png"
	noCache   bool   // bypass the artifact cache
}

// newRenderCmd creates the render command for drawing one candidate
// execution from an evaluator document.
//
// Default settings:
//   - execution: 0 (the first candidate)
//   - format: svg (config file may override)
//   - relations: rf,co,fr,addr,data,ctrl,rmw (config file may override)
func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a candidate execution as a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if opts.format == "" {
				opts.format = cfg.Format
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts, cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or - for stdout")
	cmd.Flags().IntVarP(&opts.execution, "execution", "e", 0, "index of the candidate execution to draw")
	cmd.Flags().StringVarP(&opts.relations, "relations", "r", "", "comma-separated relations to draw, in draw order")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot, png")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the rendered-artifact cache")

	return cmd
}

// validateFormat checks that the requested output format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return islaerrors.New(islaerrors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// drawList resolves the relation draw list: the --relations flag wins, then
// the config file, then the renderer's built-in default order.
func drawList(flagValue string, cfg Config) []string {
	if flagValue != "" {
		parts := strings.Split(flagValue, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	if len(cfg.Relations) > 0 {
		return cfg.Relations
	}
	return nil // keep renderer default
}

// basePath derives the output path from the output flag and input path.
// An empty output falls back to the input name with the format extension.
func basePath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender loads the executions from input, selects and serializes one,
// and writes the requested artifact.
func runRender(ctx context.Context, input string, opts *renderOpts, cfg Config) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	execs, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d candidate executions", len(execs))

	r, err := dot.New(execs)
	if err != nil {
		return err
	}
	if err := r.SelectExecution(opts.execution); err != nil {
		return islaerrors.Wrap(islaerrors.ErrCodeInvalidExecution, err,
			"no candidate execution %d in %s", opts.execution, input)
	}
	if draw := drawList(opts.relations, cfg); draw != nil {
		r.SetDraw(draw)
	}

	prog := newProgress(logger)
	observability.Render().OnSerializeStart(ctx, r.CurrentIndex(), r.Draw())
	start := time.Now()
	dotSrc := r.Render()
	observability.Render().OnSerializeComplete(ctx, r.CurrentIndex(), len(dotSrc), time.Since(start))

	data, err := renderArtifact(ctx, dotSrc, opts.format, opts.noCache, cfg)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := basePath(opts.output, input, opts.format)
	if outputPath == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %s", outputPath))
	return nil
}

// renderArtifact produces the artifact bytes for dotSrc in the requested
// format, consulting the cache for layouts Graphviz already computed.
func renderArtifact(ctx context.Context, dotSrc, format string, noCache bool, cfg Config) ([]byte, error) {
	if format == formatDOT {
		return []byte(dotSrc), nil
	}

	store := openCache(ctx, noCache, cfg)
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	key := keyer.ArtifactKey(cache.Hash([]byte(dotSrc)), format)

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	sp := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out graph (%s)", format))
	sp.Start()

	observability.Render().OnRenderStart(ctx, format)
	start := time.Now()

	var data []byte
	var err error
	switch format {
	case formatSVG:
		data, err = dot.RenderSVG(ctx, dotSrc)
	case formatPNG:
		data, err = dot.RenderPNG(ctx, dotSrc)
	}
	observability.Render().OnRenderComplete(ctx, format, len(data), time.Since(start), err)

	if err != nil {
		sp.StopWithError("Graphviz layout failed")
		return nil, err
	}
	sp.Stop()

	if setErr := store.Set(ctx, key, data, cacheTTL(cfg)); setErr == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return data, nil
}

// openCache returns the configured cache backend, or a null cache when
// caching is disabled by flag or config.
func openCache(ctx context.Context, noCache bool, cfg Config) cache.Cache {
	if noCache || !cfg.Cache.Enabled {
		return cache.NewNullCache()
	}
	dir, err := cacheDir(cfg)
	if err != nil {
		loggerFromContext(ctx).Debugf("cache disabled: %v", err)
		return cache.NewNullCache()
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Debugf("cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return store
}
