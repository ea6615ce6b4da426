// Package cli implements adcustodyctl, the operator command line for the
// custody service.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

// DefaultProgramID is the program identity the service uses unless
// configured otherwise.
const DefaultProgramID = "FPVoBFkCPJ86DP3K6hsLfEzPhcRAx3REVZqJyGB1cCVX"

func Run() ExitCode {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adcustodyctl",
		Short:         "Command line for the pay-per-click custody service.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Help(); err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "set debug logging level")
	flags.StringP("server", "s", "http://localhost:8080", "custody service base URL")
	flags.String("program-id", DefaultProgramID, "custody program identity")

	rootCmd.AddCommand(
		newDeriveCmd(),
		newShowCmd(),
		newPayPublisherCmd(),
		newPayCommissionCmd(),
	)
	return rootCmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// globals holds the persistent flags of the root command.
type globals struct {
	logger    *slog.Logger
	server    string
	programID solana.PublicKey
}

func loadGlobals(cmd *cobra.Command) (globals, error) {
	flags := cmd.Root().PersistentFlags()
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	server, err := flags.GetString("server")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get server flag: %w", err)
	}
	program, err := flags.GetString("program-id")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get program-id flag: %w", err)
	}
	programID, err := solana.PublicKeyFromBase58(program)
	if err != nil {
		return globals{}, fmt.Errorf("invalid program id: %w", err)
	}
	return globals{logger: newLogger(verbose), server: server, programID: programID}, nil
}

func publicKeyFlag(cmd *cobra.Command, name string) (solana.PublicKey, error) {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	key, err := solana.PublicKeyFromBase58(v)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return key, nil
}
