package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/tessro/cadenza/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the values the player displays",
	Long:  `Shows the clamped position, remaining time, and progress and volume percentages for the configured playback.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusResult struct {
	Track     core.Track    `json:"track"`
	IsPlaying bool          `json:"is_playing"`
	Geometry  core.Geometry `json:"geometry"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	s := statusResult{
		Track:     cfg.Track,
		IsPlaying: cfg.Playback.IsPlaying,
		Geometry:  cfg.Playback.Geometry(),
	}

	out := cmd.OutOrStdout()
	if JSONOutput() {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	g := s.Geometry
	table := NewTableWriter(out, "FIELD", "VALUE")
	table.Row("Track", s.Track.Title)
	table.Row("Artist", s.Track.Artist)
	table.Row("Written by", s.Track.Writer)
	table.Row("State", PlayingLabel(s.IsPlaying))
	table.Row("Elapsed", g.Elapsed)
	table.Row("Remaining", "-"+g.RemainingLabel)
	table.Row("Length", core.FormatTime(g.Duration))
	table.Row("Progress", FormatPercent(g.ProgressPercent))
	table.Row("Volume", FormatPercent(g.VolumePercent))
	table.Flush()

	return nil
}
