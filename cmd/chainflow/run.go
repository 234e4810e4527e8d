package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"chainflow/internal/analyze"
	"chainflow/internal/diagnostic"
	"chainflow/internal/engine"
	"chainflow/internal/manifest"
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

type options struct {
	manifest string
	packages []string
	workers  int
	memoize  bool
	logLevel string
	dump     bool
}

// session is the outcome of one pipeline run.
type session struct {
	manifest *manifest.File
	catalog  *manifest.Catalog
	members  []typeflow.Member
	report   *engine.Report
	// diags holds load-time findings: manifest warnings and tag errors.
	diags diagnostic.Diagnostics
}

// run loads the manifest and packages, then resolves every member.
func (o *options) run(cmd *cobra.Command) (*session, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), o.logLevel)
	if err != nil {
		return nil, err
	}

	mf, err := o.loadManifest(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	s := &session{manifest: mf}

	diags := manifest.Validate(mf)
	if diags.HasErrors() {
		printDiagnostics(cmd.OutOrStdout(), diags)
		return nil, errFindings
	}

	s.diags.Merge(*diags)

	s.catalog, err = manifest.Build(mf)
	if err != nil {
		return nil, err
	}

	s.members = s.catalog.Members()

	var oracle match.Oracle = s.catalog.Conversions()

	if len(o.packages) > 0 {
		graph, err := analyze.NewLoader().Load(o.packages...)
		if err != nil {
			return nil, err
		}

		tagged, tagDiags := graph.Members(s.catalog)
		s.diags.Merge(*tagDiags)
		s.members = append(s.members, tagged...)

		oracle = match.Any(oracle, analyze.NewOracle(graph))

		logger.Debug("packages loaded",
			slog.Any("patterns", o.packages),
			slog.Int("tagged_members", len(tagged)),
		)
	}

	cfg := o.config(cmd, mf.Settings)
	logger.Debug("resolving", slog.Int("members", len(s.members)), slog.Int("workers", cfg.Workers), slog.Bool("memoize", cfg.Memoize))

	s.report, err = engine.New(oracle, cfg, logger).Analyze(cmd.Context(), s.members)
	if err != nil {
		return nil, err
	}

	if o.dump {
		dumpConfig.Fdump(cmd.ErrOrStderr(), s.report.Members)
	}

	return s, nil
}

func (o *options) loadManifest(stdin io.Reader) (*manifest.File, error) {
	if o.manifest != "-" {
		return manifest.LoadFile(o.manifest)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest from stdin: %w", err)
	}

	return manifest.Parse(data)
}

// config layers defaults, manifest settings and explicitly set flags.
func (o *options) config(cmd *cobra.Command, settings manifest.Settings) engine.Config {
	cfg := engine.DefaultConfig()

	if settings.Workers > 0 {
		cfg.Workers = settings.Workers
	}

	if settings.Memoize != nil {
		cfg.Memoize = *settings.Memoize
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = o.workers
	}

	if cmd.Flags().Changed("memoize") {
		cfg.Memoize = o.memoize
	}

	return cfg
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}
