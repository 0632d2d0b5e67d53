package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/faultsim/internal/playback"
)

var timelineHeader = []string{"time_ms", "displacement", "playing"}

// TimelineCSV writes one row per sample with a header line.
func TimelineCSV(w io.Writer, result *playback.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineHeader); err != nil {
		return err
	}
	for _, s := range result.Samples {
		row := []string{
			strconv.FormatFloat(s.TimeMs, 'f', 3, 64),
			strconv.FormatFloat(s.Displacement, 'f', 6, 64),
			strconv.FormatBool(s.Playing),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
