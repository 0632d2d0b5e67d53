package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/faultsim/internal/playback"
)

type ExportData struct {
	Type            string            `json:"type"`
	Variant         string            `json:"variant,omitempty"`
	Script          string            `json:"script,omitempty"`
	MaxDisplacement float64           `json:"max_displacement"`
	DurationMs      float64           `json:"duration_ms"`
	FPS             int               `json:"fps"`
	Steps           int               `json:"steps"`
	Samples         []playback.Sample `json:"samples"`
}

func newExportData(meta RunMeta, result *playback.Result) ExportData {
	script := meta.Script
	if script == "" {
		script = result.Script
	}
	return ExportData{
		Type:            meta.Type,
		Variant:         meta.Variant,
		Script:          script,
		MaxDisplacement: meta.MaxDisplacement,
		DurationMs:      meta.DurationMs,
		FPS:             meta.FPS,
		Steps:           len(result.Samples),
		Samples:         result.Samples,
	}
}

func WriteJSON(w io.Writer, meta RunMeta, result *playback.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(meta, result))
}

func ExportJSON(path string, meta RunMeta, result *playback.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, result)
}

func ExportJSONStdout(meta RunMeta, result *playback.Result) error {
	return WriteJSON(os.Stdout, meta, result)
}
