package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/KuroiKoyani/pareto-chart/pkg/cache"
	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defects.csv")
	data := "defect,count\nScratch,10\nDent,30\nCrack,60\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Path:    writeCSV(t),
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.PointCount != 3 {
		t.Errorf("PointCount = %d, want 3", result.Stats.PointCount)
	}
	if result.Stats.Total != 100 {
		t.Errorf("Total = %v, want 100", result.Stats.Total)
	}
	if result.DatasetHash == "" {
		t.Error("DatasetHash should be set")
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("svg artifact missing or malformed")
	}
	png, ok := result.Artifacts[FormatPNG]
	if !ok || !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("png artifact missing or malformed")
	}
	doc, ok := result.Artifacts[FormatJSON]
	if !ok {
		t.Fatal("json artifact missing")
	}
	parsed, err := UnmarshalDocument(doc)
	if err != nil {
		t.Fatalf("json artifact does not parse: %v", err)
	}
	if len(parsed.Series.Points) != 3 {
		t.Errorf("document points = %d, want 3", len(parsed.Series.Points))
	}

	// NullCache never hits
	if result.CacheInfo.BuildHit || result.CacheInfo.ProjectHit || result.CacheInfo.RenderHit {
		t.Errorf("NullCache should never hit: %+v", result.CacheInfo)
	}
}

func TestRunnerExecuteCached(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, discardLogger())
	defer runner.Close()

	opts := Options{Path: writeCSV(t), Formats: []string{FormatSVG, FormatJSON}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error = %v", err)
	}
	if first.CacheInfo.BuildHit || first.CacheInfo.ProjectHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss everywhere: %+v", first.CacheInfo)
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if !second.CacheInfo.BuildHit || !second.CacheInfo.ProjectHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit everywhere: %+v", second.CacheInfo)
	}

	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}
}

func TestRunnerExecuteRefresh(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, discardLogger())
	defer runner.Close()

	path := writeCSV(t)
	if _, err := runner.Execute(context.Background(), Options{Path: path}); err != nil {
		t.Fatalf("prime Execute() error = %v", err)
	}

	result, err := runner.Execute(context.Background(), Options{Path: path, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute() error = %v", err)
	}
	if result.CacheInfo.BuildHit {
		t.Error("refresh should skip the build cache")
	}
	// Downstream keys derive from content, so identical series still hit.
	if !result.CacheInfo.ProjectHit {
		t.Error("identical series should still hit the geometry cache")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	if _, err := runner.Execute(context.Background(), Options{}); err == nil {
		t.Error("Execute without a source should fail")
	}

	_, err := runner.Execute(context.Background(), Options{
		Path:    writeCSV(t),
		Formats: []string{"bmp"},
	})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("invalid format code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}

func TestRunnerExecuteMissingFile(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Path: filepath.Join(t.TempDir(), "missing.csv"),
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestRunnerStagesIndividually(t *testing.T) {
	runner := NewRunner(nil, nil, discardLogger())
	defer runner.Close()
	ctx := context.Background()
	opts := Options{Path: writeCSV(t)}

	q, err := runner.Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	series, err := runner.Build(ctx, q, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := series.Points[2].CumulativePercent; got != 100 {
		t.Errorf("final cumulative percent = %v, want 100", got)
	}

	geom, err := runner.Project(ctx, series, opts)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if len(geom.Bars) != 3 {
		t.Errorf("geometry bars = %d, want 3", len(geom.Bars))
	}

	artifacts, err := runner.Render(ctx, series, geom, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, ok := artifacts[FormatSVG]; !ok {
		t.Error("default render should produce svg")
	}
}
