package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/robdg22/jetshift/core/model"
	"github.com/robdg22/jetshift/core/schedule"
	"github.com/robdg22/jetshift/infra/tz"
	"github.com/robdg22/jetshift/pkg/export"
)

var (
	tripPath   string
	planOut    string
	planFormat string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a traveler's schedule from a trip file and print it",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&tripPath, "trip", "t", "trip.yaml", "traveler and trip file (yaml or json)")
	planCmd.Flags().StringVarP(&planOut, "out", "o", "", "write the schedule to a file instead of printing a table")
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "json", "output format for --out: json or csv")
	rootCmd.AddCommand(planCmd)
}

// tripFile is the on-disk shape consumed by the plan command.
type tripFile struct {
	Traveler model.Traveler `json:"traveler"`
	Trip     model.Trip     `json:"trip"`
}

func loadTripFile(path string) (*tripFile, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return nil, fmt.Errorf("unsupported trip file format: %s", filepath.Ext(path))
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Round-trip through JSON so the clock, date and strategy types decode
	// with their own unmarshalers.
	raw, err := json.Marshal(k.Raw())
	if err != nil {
		return nil, err
	}
	var tf tripFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, err
	}
	return &tf, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	tf, err := loadTripFile(tripPath)
	if err != nil {
		return fmt.Errorf("load trip file: %w", err)
	}

	planner := schedule.New(tz.NewResolver())
	entries := planner.ComputeSchedule(tf.Traveler, tf.Trip)
	if len(entries) == 0 {
		fmt.Println("no schedule: trip has no outbound leg")
		return nil
	}

	if planOut != "" {
		return writePlanFile(planOut, planFormat, entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDAY\tBEDTIME\tWAKE\tSTAGE\tOFFSET\tNOTE")
	for _, e := range entries {
		note := e.StrategyMessage
		if e.HotelArrivalEstimate != nil {
			note = fmt.Sprintf("%s (hotel ~%s)", note, e.HotelArrivalEstimate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%+dm\t%s\n",
			e.Date, e.DayLabel, e.Bedtime, e.WakeTime, e.Stage, e.BodyClockOffsetMinutes, note)
	}
	return w.Flush()
}

func writePlanFile(path, format string, entries []model.DailyScheduleEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	switch strings.ToLower(format) {
	case "json":
		return export.WriteJSON(f, entries)
	case "csv":
		return export.WriteCSV(f, entries)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
