package cli

import (
	"github.com/spf13/cobra"

	"github.com/splitkit/textsplit/pkg/logger"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "textsplit",
		Short:         "Split text into bounded-size chunks",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level, logJSON, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				level, logJSON = "info", false
			}
			logger.SetupLogger(level, logJSON, false)
		},
	}

	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		SplitCmd(),
		LanguagesCmd(),
	)

	return root
}
