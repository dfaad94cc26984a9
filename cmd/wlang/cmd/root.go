package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/wlang/pkg/core/config"
	mdwerror "github.com/msto63/wlang/pkg/core/error"
	mdwlog "github.com/msto63/wlang/pkg/core/log"
	"github.com/msto63/wlang/pkg/core/logging"
	"github.com/msto63/wlang/pkg/lang/ast"
	"github.com/msto63/wlang/pkg/lang/frontend"
)

// rootOptions holds the persistent flags shared by all commands
type rootOptions struct {
	cfgFile string
	verbose bool
	backend string
	format  string
	color   bool
}

// NewRootCmd builds the wlang command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wlang [file]",
		Short: "Front end for the while teaching language",
		Long: `wlang scans and parses programs of the while language and prints
their syntax tree.

Without a subcommand wlang behaves like "wlang parse": the program is read
from the given file, or from stdin if no file (or "-") is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: $WLANG_CONFIG, ./wlang.toml, ./wlang.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	flags.StringVar(&opts.backend, "backend", "", "parser back end: descent or participle")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: indented, canonical, json or yaml")
	flags.BoolVar(&opts.color, "color", false, "colour the indented tree")

	root.AddCommand(
		newParseCmd(opts),
		newTokensCmd(opts),
		newCheckCmd(opts),
		newGrammarCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree until completion or interrupt
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// session bundles what one command invocation needs
type session struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *frontend.Engine
	format frontend.Format
	style  ast.Styler
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Parser.Backend = opts.backend
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = opts.color
	}
	if opts.verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loggerCfg := logging.DefaultLoggerConfig("wlang")
	loggerCfg.Level = cfg.General.LogLevel
	loggerCfg.Format = cfg.General.LogFormat
	loggerCfg.Output = cmd.ErrOrStderr()
	logger := logging.NewLogger(loggerCfg)
	mdwlog.SetDefault(logger)
	if path := cfg.Path(); path != "" {
		logger.Debug("Configuration loaded", mdwlog.Fields{"path": path})
	}

	backend, err := frontend.ParseBackend(cfg.Parser.Backend)
	if err != nil {
		return nil, err
	}
	format, err := frontend.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	engine, err := frontend.NewEngine(frontend.Options{
		Logger:         logger,
		Backend:        backend,
		MaxInputLength: cfg.Parser.MaxInputLength,
		CacheSize:      cfg.Parser.CacheSize,
	})
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger, engine: engine, format: format}
	if cfg.Output.Color {
		s.style = treeStyler
	}
	return s, nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// readSource returns the program text of the named file, or of stdin when
// no file or "-" is given
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to read stdin").
				WithCode(mdwerror.CodeIO).
				WithOperation("cmd.readSource").
				WithContext("stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read "+args[0]).
			WithCode(mdwerror.CodeIO).
			WithOperation("cmd.readSource").
			WithContext(args[0])
	}
	return string(data), nil
}
