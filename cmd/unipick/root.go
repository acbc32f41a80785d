package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"unipick/internal/backend"
	"unipick/internal/identity"
	"unipick/internal/platform/config"
	"unipick/internal/platform/logger"
	"unipick/internal/report"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	backendURL   string
	identityFile string
	logLevel     string
	width        int
	plain        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "unipick",
		Short: "Overseas university selection from the terminal",
		Long: `unipick fills in the university survey for one target country and
shows the recommendation report.

Available subcommands:
  whoami       - Print the anonymous id used for submissions
  forget       - Drop the anonymous id; the next command mints a new one
  submit       - Submit a YAML answers file
  result       - Render a stored evaluation
  universities - Browse the university catalog`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.backendURL, "backend", config.FromEnv().Backend.BaseURL, "recommendation API base URL")
	flags.StringVar(&opts.identityFile, "identity-file", "", "file holding the anonymous id (default: user config dir)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")
	flags.IntVar(&opts.width, "width", 80, "word wrap width for rendered output")
	flags.BoolVar(&opts.plain, "plain", false, "print markdown without terminal styling")

	root.AddCommand(
		newWhoamiCmd(opts),
		newForgetCmd(opts),
		newSubmitCmd(opts),
		newResultCmd(opts),
		newUniversitiesCmd(opts),
	)
	return root
}

func (o *options) storage() (identity.Storage, error) {
	if o.identityFile != "" {
		return &identity.FileStorage{Path: o.identityFile}, nil
	}
	return identity.DefaultFileStorage()
}

func (o *options) client() *backend.Client {
	return backend.New(o.backendURL)
}

func (o *options) logger() *slog.Logger {
	return logger.NewWithWriter(os.Stderr, o.logLevel)
}

// print writes a markdown document, styled unless --plain is set.
func (o *options) print(cmd *cobra.Command, md string) error {
	if o.plain {
		_, err := fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}
	styled, err := report.RenderMarkdown(md, o.width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), styled)
	return err
}
