// Package main provides the CLI entry point for scrambles-matcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/soyrandom1/scrambles-matcher/internal/config"
	"github.com/soyrandom1/scrambles-matcher/internal/server"
	"github.com/soyrandom1/scrambles-matcher/internal/tui"
	"github.com/soyrandom1/scrambles-matcher/internal/wca"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/output"
)

var (
	configPath string
	outputPath string
	pretty     bool
	format     string
	loginCode  string

	cfg    config.Config
	logger *slog.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scrambles-matcher",
		Short: "Import competitions for scrambles matching",
		Long: `scrambles-matcher imports a competition from the WCA website, a WCIF
JSON file or a results spreadsheet (Cubecomps, Cubing China) and outputs WCIF.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			logger = newLogger(cfg.Log, cmd.ErrOrStderr())
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: $XDG_CONFIG_HOME/scrambles-matcher/config.yaml)")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a competition and output its WCIF",
	}
	importCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	importCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	importCmd.PersistentFlags().StringVar(&format, "format", string(output.FormatJSON), "Output format: json, yaml")

	importCmd.AddCommand(
		&cobra.Command{
			Use:   "wca <competition-id>",
			Short: "Import a competition you manage from the WCA website",
			Args:  cobra.ExactArgs(1),
			RunE:  runImportWCA,
		},
		&cobra.Command{
			Use:   "wcif <file.json>",
			Short: "Import a JSON file with an existing WCIF",
			Args:  cobra.ExactArgs(1),
			RunE:  runImportFile(importer.SourceWCIF),
		},
		&cobra.Command{
			Use:   "xlsx <file.xlsx>",
			Short: "Import a results spreadsheet",
			Args:  cobra.ExactArgs(1),
			RunE:  runImportFile(importer.SourceXLSX),
		},
	)

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize access to the competitions you manage",
		Args:  cobra.NoArgs,
		RunE:  runLogin,
	}
	loginCmd.Flags().StringVar(&loginCode, "code", "", "Authorization code to exchange for an access token")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive import",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the imported WCIF to this file on exit")
	tuiCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	tuiCmd.Flags().StringVar(&format, "format", string(output.FormatJSON), "Output format: json, yaml")

	rootCmd.AddCommand(
		importCmd,
		&cobra.Command{
			Use:   "competitions",
			Short: "List the recent competitions you manage",
			Args:  cobra.NoArgs,
			RunE:  runCompetitions,
		},
		loginCmd,
		tuiCmd,
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP import service",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
	)

	return rootCmd
}

func runImportWCA(cmd *cobra.Command, args []string) error {
	client := wca.NewClient(cfg.WCA, logger)

	var comp *models.Competition
	err := client.ImportFromCompetition(cmd.Context(), args[0], func(c *models.Competition) {
		comp = c
	})
	if errors.Is(err, wca.ErrUnauthorized) {
		return fmt.Errorf("%w: run `scrambles-matcher login` and set wca.access_token", err)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	return writeCompetition(cmd.OutOrStdout(), importer.SourceWCA, comp)
}

func runImportFile(source importer.Source) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		var comp *models.Competition
		err := importer.ImportFile(args[0], source,
			func(c *models.Competition) { comp = c },
			func(message string) { fmt.Fprintln(cmd.ErrOrStderr(), message) },
		)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		return writeCompetition(cmd.OutOrStdout(), source, comp)
	}
}

func writeCompetition(stdout io.Writer, source importer.Source, comp *models.Competition) error {
	data, err := output.Encode(comp, output.Format(format), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	logger.Info("import finished",
		slog.String("import_id", uuid.NewString()),
		slog.String("source", string(source)),
		slog.Int("events", len(comp.Events)),
		slog.Int("persons", len(comp.Persons)),
	)

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}

func runCompetitions(cmd *cobra.Command, args []string) error {
	client := wca.NewClient(cfg.WCA, logger)
	list, err := client.ManagedCompetitions(cmd.Context())
	if err != nil {
		return fmt.Errorf("list competitions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "You don't manage any upcoming or recent competition.")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.StartDate, c.CountryISO2)
	}
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	if cfg.WCA.ClientID == "" {
		return errors.New("wca.client_id is not configured")
	}
	oauthCfg := wca.OAuthConfig(cfg.WCA)
	out := cmd.OutOrStdout()

	if loginCode == "" {
		fmt.Fprintln(out, "Open this URL, authorize the application and run login again with --code:")
		fmt.Fprintln(out, oauthCfg.AuthCodeURL(uuid.NewString()))
		return nil
	}

	token, err := oauthCfg.Exchange(cmd.Context(), loginCode)
	if err != nil {
		return fmt.Errorf("exchange code: %w", err)
	}
	fmt.Fprintf(out, "Set this token as wca.access_token (or %s_WCA_ACCESS_TOKEN):\n%s\n", config.EnvPrefix, token.AccessToken)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	tuiLogger, closeLog, err := fileLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	var remote tui.Remote
	if cfg.WCA.AccessToken != "" {
		remote = wca.NewClient(cfg.WCA, tuiLogger)
	}

	app := tui.New(cmd.Context(), remote, nil, tuiLogger)
	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		return err
	}
	if err := app.Crashed(); err != nil {
		return fmt.Errorf("import crashed: %w", err)
	}

	comp := app.Imported()
	if comp == nil || outputPath == "" {
		return nil
	}
	return writeCompetition(cmd.OutOrStdout(), app.Tab(), comp)
}

func runServe(cmd *cobra.Command, args []string) error {
	var remote server.Remote
	if cfg.WCA.AccessToken != "" {
		remote = wca.NewClient(cfg.WCA, logger)
	} else {
		logger.Warn("wca.access_token is not set, WCA routes are disabled")
	}
	return server.New(cfg.Server, remote, logger).Run(cmd.Context())
}
