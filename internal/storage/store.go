package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/faultsim/internal/export"
	"github.com/san-kum/faultsim/internal/playback"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	timelineFile = "timeline.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMeta describes a saved playback. The caller fills in the animation
// parameters; Save assigns ID and Timestamp and summarizes the samples.
type RunMeta struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Variant           string    `json:"variant,omitempty"`
	Script            string    `json:"script,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	MaxDisplacement   float64   `json:"max_displacement"`
	DurationMs        float64   `json:"duration_ms"`
	FPS               int       `json:"fps"`
	Samples           int       `json:"samples"`
	FinalDisplacement float64   `json:"final_displacement"`
}

func (s *Store) Save(meta RunMeta, result *playback.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Type, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Samples = len(result.Samples)
	meta.FinalDisplacement = result.Final().Displacement
	if meta.Script == "" {
		meta.Script = result.Script
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, timelineFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.TimelineCSV(csvFile, result); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns saved runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMeta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMeta{}, nil
		}
		return nil, err
	}

	runs := make([]RunMeta, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMeta, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata for %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadTimeline reads back the sampled timeline. Malformed rows are skipped.
func (s *Store) LoadTimeline(runID string) (*playback.Result, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, timelineFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &playback.Result{Samples: []playback.Sample{}}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		ts, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		disp, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		smp := playback.Sample{TimeMs: ts, Displacement: disp}
		if len(record) > 2 {
			smp.Playing, _ = strconv.ParseBool(record[2])
		}
		result.Samples = append(result.Samples, smp)
	}

	if meta, err := s.Load(runID); err == nil {
		result.Script = meta.Script
	}
	return result, nil
}
