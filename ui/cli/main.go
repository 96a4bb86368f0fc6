// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Folio using cobra. It
// defines the root command, which launches the terminal viewer, the global
// flags and the shared startup path every subcommand runs through.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/oelhwry/folio/buildvars"
	"github.com/oelhwry/folio/config"
	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/db"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/ui/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// dumpWidth wraps the plain text dump when the output has no size.
const dumpWidth = 80

// modulePath identifies this module in dependency build info.
const modulePath = "github.com/oelhwry/folio"

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	explicit, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	logging.SetVerbose(verbose)
	db.SetDebug(verbose)

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, explicit)
	// A missing file is expected on first run.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if explicit == nil {
			writeDefaultConfig()
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// An empty value in the file must not switch the store off.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	i18n.Init(appConfig.Language)
	logging.Debugf("config loaded: content=%q database=%s language=%s", appConfig.Content, appConfig.Database.Type, appConfig.Language)
	return nil
}

// writeDefaultConfig persists the built-in defaults so users have a file
// to edit. Failures are logged, the program runs on defaults.
func writeDefaultConfig() {
	def, _ := config.LoadConfig[config.Config](nil, config.Defaults(), nil)
	if err := config.WriteConfigFile(&def, false); err != nil {
		logging.Warnf("%s", i18n.T("cli.config_write_failed", err))
		return
	}
	if path, err := config.GetConfigPath(false); err == nil {
		logging.Infof("%s", i18n.T("cli.config_written", path))
	}
}

// Execute runs the CLI entrypoint. Interrupts cancel the command context
// so servers and the viewer shut down cleanly.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only an explicitly set --config is honoured.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with every subcommand attached. Each
// call builds fresh commands, so tests can run them in isolation.
func NewRootCmd() *cobra.Command {
	defaults := config.Defaults()

	cmd := &cobra.Command{
		Use:           "folio",
		Short:         i18n.T("app.short"),
		Long:          i18n.T("app.long"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: runViewer,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output, including database logs")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("content", defaults["content"].(string), "Portfolio content file (empty uses the built-in portfolio)")
	cmd.PersistentFlags().String("language", defaults["language"].(string), `Interface language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", defaults["database.type"].(string), "Database type ("+strings.Join(db.Types, ", ")+")")
	cmd.PersistentFlags().String("database.dsn", defaults["database.dsn"].(string), "Database connection string (DSN)")
	cmd.Flags().Bool("watch", true, "Reload the viewer when the content file changes")

	cmd.AddCommand(
		newValidateCmd(),
		newExportCmd(),
		newServeCmd(),
		newDeployCmd(),
		newDBCmd(),
		newBackupCmd(),
		newRestoreCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

// runViewer launches the terminal viewer, or prints the portfolio when the
// output is not a terminal.
func runViewer(cmd *cobra.Command, args []string) error {
	p, src, err := loadContent()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		logging.Debugf("%s", i18n.T("cli.no_terminal"))
		return tui.Dump(out, p, dumpWidth)
	}

	if logFile, err := viewerLogPath(); err == nil {
		restore, err := logging.ToFile(logFile)
		if err != nil {
			logging.Warnf("could not redirect logs to %s: %v", logFile, err)
		}
		defer restore()
	}

	watch, _ := cmd.Flags().GetBool("watch")
	return tui.Run(cmd.Context(), p, src, tui.Options{Watch: watch})
}

// viewerLogPath is the log file used while the viewer owns the terminal.
func viewerLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "folio")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "folio.log"), nil
}

// loadContent reads the configured content file, or the built-in
// portfolio when none is set.
func loadContent() (model.Portfolio, content.Source, error) {
	src := content.Source{Path: appConfig.Content}
	p, err := src.Load()
	return p, src, err
}

// openStore opens the configured catalog database.
func openStore() (*db.Store, error) {
	return db.NewStoreFromDSN(appConfig.Database.Type, appConfig.Database.Dsn)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record the module as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

// promptForConfirmation displays a prompt and reads one answer line.
func promptForConfirmation(in io.Reader, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer))
}
