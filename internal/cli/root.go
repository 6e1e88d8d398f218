package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	appLog "ntucal/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "ntucal",
	Short: "Convert an exported semester timetable into an iCalendar file",
	Long: `ntucal turns a tab-delimited timetable export into a calendar file,
with one event per class occurrence and one per course exam.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			appLog.SetLevel(zapcore.DebugLevel)
		}
	},
}

// Execute runs the root command and exits non-zero on error. Errors are
// already logged with full context by the failing subcommand.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
