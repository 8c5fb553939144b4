package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/archctl/archctl/cache"
	"github.com/archctl/archctl/phase"
	"github.com/archctl/archctl/pkg/apis/archctl.io/v1beta1"
	"github.com/archctl/archctl/pkg/host"
	"github.com/archctl/archctl/pkg/manifest"
	"github.com/google/uuid"
	"github.com/k0sproject/rig"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/shiena/ansicolor"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type (
	ctxConfigKey  struct{}
	ctxManagerKey struct{}
	ctxLogFileKey struct{}
)

var (
	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Enable debug logging",
		Aliases: []string{"d"},
		EnvVars: []string{"DEBUG"},
	}

	traceFlag = &cli.BoolFlag{
		Name:    "trace",
		Usage:   "Enable trace logging",
		Aliases: []string{"dd"},
		EnvVars: []string{"TRACE"},
		Hidden:  true,
	}

	configFlag = &cli.StringFlag{
		Name:      "config",
		Usage:     "Path to the installation config (.toml, .yaml). Use '-' to read toml from stdin.",
		Aliases:   []string{"c"},
		Value:     manifest.DefaultFilename,
		TakesFile: true,
	}

	expandEnvFlag = &cli.BoolFlag{
		Name:  "expand-env",
		Usage: "Substitute ${VAR} references in the config from the environment",
	}

	dryRunFlag = &cli.BoolFlag{
		Name:    "dry-run",
		Usage:   "Log the commands and file writes instead of executing them",
		EnvVars: []string{"DRY_RUN"},
	}

	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Stop at the first failing command instead of logging it and continuing",
	}

	forceFlag = &cli.BoolFlag{
		Name:    "force",
		Usage:   "Don't ask for confirmation before formatting the partitions",
		Aliases: []string{"f"},
	}

	mountpointFlag = &cli.StringFlag{
		Name:  "mountpoint",
		Usage: "Directory where the target system is mounted",
		Value: phase.DefaultMountpoint,
	}
)

// actions can be used to chain action functions (for urfave/cli's Before, After, etc)
func actions(funcs ...func(*cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, f := range funcs {
			if err := f(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}

// initConfig reads the config file and stores the parsed config in the context
func initConfig(ctx *cli.Context) error {
	f := ctx.String("config")
	if f == "" {
		return fmt.Errorf("no configuration file given")
	}

	cfg, err := manifest.ReadFile(f, ctx.Bool("expand-env"))
	if err != nil {
		return err
	}

	log.Debugf("loaded configuration from %s", cfg.Origin)
	ctx.Context = context.WithValue(ctx.Context, ctxConfigKey{}, cfg)

	return nil
}

// initManager builds the phase manager for the local host
func initManager(ctx *cli.Context) error {
	cfg, ok := ctx.Context.Value(ctxConfigKey{}).(*v1beta1.Config)
	if !ok || cfg == nil {
		return fmt.Errorf("config is nil")
	}

	h := host.NewLocal()
	h.DryRun = ctx.Bool("dry-run")

	manager, err := phase.NewManager(cfg, h)
	if err != nil {
		return fmt.Errorf("failed to initialize phase manager: %w", err)
	}

	manager.DryRun = h.DryRun
	manager.Strict = ctx.Bool("strict")
	if mp := ctx.String("mountpoint"); mp != "" {
		manager.Mountpoint = mp
	}

	ctx.Context = context.WithValue(ctx.Context, ctxManagerKey{}, manager)

	return nil
}

// initLogging initializes the logger
func initLogging(ctx *cli.Context) error {
	log.SetLevel(log.TraceLevel)
	log.SetOutput(io.Discard)
	initScreenLogger(logLevelFromCtx(ctx, log.InfoLevel))
	rig.SetLogger(log.StandardLogger())
	initColors()
	return initFileLogger(ctx)
}

// initSilentLogging only lets fatal errors through to the screen
func initSilentLogging(ctx *cli.Context) error {
	log.SetLevel(log.TraceLevel)
	log.SetOutput(io.Discard)
	initScreenLogger(logLevelFromCtx(ctx, log.FatalLevel))
	rig.SetLogger(log.StandardLogger())
	return initFileLogger(ctx)
}

func initColors() {
	phase.Colorize = aurora.NewAurora(isatty.IsTerminal(os.Stdout.Fd()))
}

func logLevelFromCtx(ctx *cli.Context, defaultLevel log.Level) log.Level {
	if ctx.Bool("debug") {
		return log.DebugLevel
	} else if ctx.Bool("trace") {
		return log.TraceLevel
	} else {
		return defaultLevel
	}
}

func initScreenLogger(lvl log.Level) {
	log.AddHook(screenLoggerHook(lvl))
}

func initFileLogger(ctx *cli.Context) error {
	lf, err := LogFile()
	if err != nil {
		return err
	}
	log.AddHook(fileLoggerHook(lf))
	ctx.Context = context.WithValue(ctx.Context, ctxLogFileKey{}, lf.Name())
	return nil
}

// LogFile opens the session log in the cache directory and writes a
// session header
func LogFile() (*os.File, error) {
	logDir := cache.Dir()
	if err := cache.EnsureDir(logDir); err != nil {
		return nil, fmt.Errorf("error while creating log directory %s: %s", logDir, err.Error())
	}

	fn := cache.File("archctl.log")
	logFile, err := os.OpenFile(fn, os.O_RDWR|os.O_CREATE|os.O_APPEND|os.O_SYNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %s", fn, err.Error())
	}

	_, _ = fmt.Fprintf(logFile, "time=\"%s\" level=info msg=\"###### New session %s ######\"\n", time.Now().Format(time.RFC822), uuid.NewString())

	return logFile, nil
}

func logFileName(ctx *cli.Context) string {
	if fn, ok := ctx.Context.Value(ctxLogFileKey{}).(string); ok {
		return fn
	}
	return cache.File("archctl.log")
}

type loghook struct {
	Writer    io.Writer
	Formatter log.Formatter

	levels []log.Level
}

func (h *loghook) SetLevel(level log.Level) {
	h.levels = []log.Level{}
	for _, l := range log.AllLevels {
		if level >= l {
			h.levels = append(h.levels, l)
		}
	}
}

func (h *loghook) Levels() []log.Level {
	return h.levels
}

func (h *loghook) Fire(entry *log.Entry) error {
	line, err := h.Formatter.Format(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to format log entry: %v", err)
		return err
	}
	_, err = h.Writer.Write(line)
	return err
}

func screenLoggerHook(lvl log.Level) *loghook {
	l := &loghook{Formatter: &log.TextFormatter{DisableTimestamp: lvl < log.DebugLevel, ForceColors: true}}

	if runtime.GOOS == "windows" {
		l.Writer = ansicolor.NewAnsiColorWriter(os.Stdout)
	} else {
		l.Writer = os.Stdout
	}

	l.SetLevel(lvl)

	return l
}

func fileLoggerHook(logFile io.Writer) *loghook {
	l := &loghook{
		Formatter: &log.TextFormatter{
			FullTimestamp:          true,
			TimestampFormat:        time.RFC822,
			DisableLevelTruncation: true,
		},
		Writer: logFile,
	}

	l.SetLevel(log.DebugLevel)

	return l
}
