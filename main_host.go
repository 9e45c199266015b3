//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"calcsat/app"
	"calcsat/calcos/calc"
	"calcsat/hal"
	"calcsat/internal/buildinfo"
	"calcsat/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	verbose    bool
	watch      bool
	logFile    string

	headlessHz    int
	headlessTicks uint64
	headlessKeys  string

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "calcsat",
	Short:   "CalcSat keypad calculator emulator",
	Version: buildinfo.String(),
	Long: `CalcSat emulates a 4x4 keypad calculator with a two-line character LCD.

Keypad: 0-9 digits, A add, B subtract, C decimal point, D shift,
* equals, # backspace. Shifted: A multiply, B divide, C power of ten,
# clear entry, 1-5 memory store/recall/clear/add/subtract.

Run without arguments to open the emulator window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = watch
		}

		// The terminal UI owns stdout and stderr.
		if cmd.Name() == "term" && logFile == "" {
			logger = zap.NewNop()
			return nil
		}
		logger, err = newLogger(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		host, keymaps, stop, err := hostSetup(cmd.Context())
		if err != nil {
			return err
		}
		defer stop()
		return hal.RunWindow(newApp(keymaps), host)
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the calculator in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		host, keymaps, stop, err := hostSetup(cmd.Context())
		if err != nil {
			return err
		}
		defer stop()
		return hal.RunTerminal(cmd.Context(), newApp(keymaps), host, hal.TerminalConfig{Hz: cfg.Runner.Hz})
	},
}

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run without a window, printing every LCD frame",
	Long: `Runs the full system without a window. Keys given with --keys are typed
one every runner.key_every ticks; every frame shown on the LCD is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host, keymaps, stop, err := hostSetup(cmd.Context())
		if err != nil {
			return err
		}
		defer stop()

		hz := cfg.Runner.Hz
		if cmd.Flags().Changed("hz") {
			hz = headlessHz
		}
		out := cmd.OutOrStdout()
		return hal.RunHeadless(cmd.Context(), newApp(keymaps), host, hal.HeadlessConfig{
			Hz:       hz,
			Ticks:    headlessTicks,
			Keys:     headlessKeys,
			KeyEvery: cfg.Runner.KeyEvery,
			OnFrame:  func(lines []string) { printFrame(out, lines) },
		})
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys [sequence]",
	Short: "Feed a key sequence straight to the engine",
	Long: `Feeds each keypad symbol to the calculator engine and prints the two
display lines after every key.

Example:
  calcsat keys "12A3*"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return replayKeys(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&watch, "watch", false, "Reload the keymap when the config file changes")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	headlessCmd.Flags().IntVar(&headlessHz, "hz", 60, "Tick rate")
	headlessCmd.Flags().Uint64Var(&headlessTicks, "ticks", 0, "Stop after N ticks (0 = after the key script, or never)")
	headlessCmd.Flags().StringVar(&headlessKeys, "keys", "", "Keypad symbols to type")

	rootCmd.AddCommand(termCmd, headlessCmd, keysCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(c config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if logFile != "" {
		zc.OutputPaths = []string{logFile}
		zc.ErrorOutputPaths = []string{logFile}
	}
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// hostSetup builds the host HAL config and, with watching on, starts the
// config watcher. Reloaded keymaps arrive on the returned channel.
func hostSetup(ctx context.Context) (hal.HostConfig, <-chan *hal.Keymap, func(), error) {
	host := hal.HostConfig{Cols: cfg.Display.Cols, Rows: cfg.Display.Rows, Log: logger}
	keymaps := make(chan *hal.Keymap, 1)
	km, err := cfg.KeymapTable()
	if err != nil {
		return host, nil, nil, err
	}
	keymaps <- km

	if !cfg.Watch || configPath == "" {
		return host, keymaps, func() {}, nil
	}

	w, err := config.NewWatcher(configPath, func(c config.Config) {
		km, err := c.KeymapTable()
		if err != nil {
			logger.Warn("keymap reload rejected", zap.Error(err))
			return
		}
		select {
		case <-keymaps:
		default:
		}
		keymaps <- km
		logger.Info("keymap reloaded", zap.String("path", configPath))
	}, func(err error) {
		logger.Warn("config reload failed", zap.Error(err))
	})
	if err != nil {
		return host, nil, nil, err
	}
	w.Start(ctx)
	logger.Info("watching config", zap.String("path", configPath))
	return host, keymaps, w.Stop, nil
}

func newApp(keymaps <-chan *hal.Keymap) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		return app.NewSystem(h, app.Config{Boot: true, Keymaps: keymaps}).Step
	}
}

func printFrame(w io.Writer, lines []string) {
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	fmt.Fprintf(w, "[%s]\n", strings.Join(lines, " | "))
}

func replayKeys(w io.Writer, keys string) error {
	c := calc.New()
	for _, r := range keys {
		k := calc.Key(r)
		if !k.Valid() {
			return fmt.Errorf("key %q is not on the keypad", r)
		}
		c.ProcessKey(k)
		status, main := c.Lines()
		fmt.Fprintf(w, "%c  %-16s %s\n", r, status, main)
	}
	return nil
}
