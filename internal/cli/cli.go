package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/pvcircus/internal/app"
	"github.com/vk/pvcircus/internal/circuserr"
	"github.com/vk/pvcircus/internal/config"
	"github.com/vk/pvcircus/internal/hcldata"
	"github.com/vk/pvcircus/internal/yamldata"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
	ExitData    = 3
)

const envPrefix = "PVCIRCUS"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCommand builds the pvcircus command. Reports go to outW; logs and
// usage go to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "pvcircus [flags] DATA_PATH...",
		Short: "Register named data and resolve its dependency order.",
		Long: `pvcircus loads named data from .hcl, .yaml and .yml files, registers it in a
keyed registry, resolves the order in which entries must be evaluated so that
every entry follows the entries its metadata references, and validates
percent uncertainty bounds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return &ExitError{Code: ExitUsage, Message: "at least one DATA_PATH is required"}
			}

			cfg, err := app.NewConfig(app.Config{
				DataPaths: args,
				LogFormat: strings.ToLower(v.GetString("log-format")),
				LogLevel:  strings.ToLower(v.GetString("log-level")),
				Output:    strings.ToLower(v.GetString("output")),
			})
			if err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}
			slog.Debug("CLI parser finished successfully.", "config", cfg)

			loader := config.MultiLoader{hcldata.NewLoader(), yamldata.NewLoader()}
			return app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, loader).Run(cmd.Context())
		},
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	})

	flags := cmd.Flags()
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringP("output", "o", "text", "Report format. Options: 'text' or 'json'.")
	for _, name := range []string{"log-format", "log-level", "output"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}

// Execute runs the command line and converts any failure into an
// *ExitError carrying the exit code and the user-facing message.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	return toExitError(cmd.ExecuteContext(ctx))
}

func toExitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if circuserr.KindOf(err) != circuserr.KindUnknown {
		return &ExitError{Code: ExitData, Message: circuserr.Render(err)}
	}
	return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("Error: %v", err)}
}
