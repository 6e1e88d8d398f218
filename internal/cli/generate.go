package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"ntucal/internal/config"
	"ntucal/internal/ics"
	appLog "ntucal/internal/log"
	"ntucal/internal/timetable"
)

var generateCmd = &cobra.Command{
	Use:   "generate <timetable-file>",
	Short: "Generate an ICS calendar from a timetable export",
	Long: `Parse a tab-delimited timetable export and write an ICS file with one
event per class occurrence and one per exam. The semester start date must
fall inside the first teaching week.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startStr, _ := cmd.Flags().GetString("semester-start")
		semesterStart, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			appLog.Error("invalid semester start date", err, "value", startStr)
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		table, err := os.ReadFile(args[0])
		if err != nil {
			appLog.Error("failed to read timetable file", err, "path", args[0])
			return err
		}

		courses, err := timetable.ParseTable(string(table), cfg.RecessWeek)
		if err != nil {
			appLog.Error("failed to parse timetable", err, "path", args[0])
			return err
		}
		appLog.Debug("timetable parsed", "course_count", len(courses))

		events, err := timetable.GenerateEvents(courses, semesterStart, cfg.UTCOffsetMinutes)
		if err != nil {
			appLog.Error("failed to generate events", err)
			return err
		}

		if err := ics.WriteFile(cfg.Out, cfg.CalendarName, cfg.ProdID, events); err != nil {
			appLog.Error("failed to write calendar", err, "out", cfg.Out)
			return err
		}

		appLog.Info("calendar written",
			"out", cfg.Out,
			"course_count", len(courses),
			"event_count", len(events),
		)
		return nil
	},
}

// loadConfig resolves the effective configuration: the YAML file (created on
// first run) overlaid with any flags set on this invocation.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			appLog.Error("failed to resolve config path", err)
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", path)
		return nil, err
	}

	if cmd.Flags().Changed("offset-minutes") {
		cfg.UTCOffsetMinutes, _ = cmd.Flags().GetInt("offset-minutes")
	}
	if cmd.Flags().Changed("recess-week") {
		cfg.RecessWeek, _ = cmd.Flags().GetUint32("recess-week")
	}
	if cmd.Flags().Changed("out") {
		cfg.Out, _ = cmd.Flags().GetString("out")
	}

	appLog.Debug("effective config",
		"config_path", path,
		"offset_minutes", cfg.UTCOffsetMinutes,
		"recess_week", cfg.RecessWeek,
		"out", cfg.Out,
	)
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("semester-start", "s", "", "Date inside the first teaching week (YYYY-MM-DD)")
	generateCmd.Flags().Int("offset-minutes", 8*60, "Timezone offset from UTC in minutes")
	generateCmd.Flags().Uint32("recess-week", 8, "Calendar week number of the recess week")
	generateCmd.Flags().StringP("out", "o", "./cal.ics", "Output file path")
	generateCmd.Flags().String("config", "", "Path to config file")
	generateCmd.MarkFlagRequired("semester-start")
}
