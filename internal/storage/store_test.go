package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/faultsim/internal/playback"
)

func testResult() *playback.Result {
	return &playback.Result{
		Script: "play",
		Samples: []playback.Sample{
			{TimeMs: 0, Displacement: 0, Playing: true},
			{TimeMs: 1500, Displacement: 35, Playing: true},
			{TimeMs: 3000, Displacement: 40, Playing: false},
		},
	}
}

func testMeta() RunMeta {
	return RunMeta{Type: "strike-slip", Variant: "classic", MaxDisplacement: 40, DurationMs: 3000, FPS: 30}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Type != "strike-slip" {
		t.Errorf("expected type 'strike-slip', got '%s'", meta.Type)
	}
	if meta.Samples != 3 {
		t.Errorf("expected 3 samples, got %d", meta.Samples)
	}
	if meta.FinalDisplacement != 40 {
		t.Errorf("expected final displacement 40, got %f", meta.FinalDisplacement)
	}
	if meta.Script != "play" {
		t.Errorf("expected script 'play', got '%s'", meta.Script)
	}

	timeline, err := st.LoadTimeline(runID)
	if err != nil {
		t.Fatalf("load timeline failed: %v", err)
	}

	if len(timeline.Samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(timeline.Samples))
	}
	if s := timeline.Samples[1]; s.TimeMs != 1500 || s.Displacement != 35 || !s.Playing {
		t.Errorf("unexpected sample %+v", s)
	}
	if timeline.Final().Playing {
		t.Error("final sample should be stopped")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	first, err := st.Save(testMeta(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta := testMeta()
	meta.Type = "normal"
	if _, err := st.Save(meta, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first {
		t.Errorf("expected oldest run first, got %s", runs[0].ID)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Load: expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTimeline("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("LoadTimeline: expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testMeta(), testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "timeline.csv")); os.IsNotExist(err) {
		t.Error("timeline.csv not created")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testMeta(), testResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Steps != 3 || got.Type != "strike-slip" || got.Script != "play" {
		t.Errorf("unexpected export %+v", got)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, testMeta(), testResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
