package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moharchaudhuri17/tidytuesday/pkg/cache"
	"github.com/moharchaudhuri17/tidytuesday/pkg/dataset"
	"github.com/moharchaudhuri17/tidytuesday/pkg/glyph"
)

const bechdelCSV = `year,id,imdb_id,title,rating
1997,1,tt0117056,Titanic,3
1997,2,tt0119654,Men in Black,1
1997,3,tt0118971,The Devil's Advocate,3
2005,4,tt0407887,The Departed,0
`

const postOfficeCSV = `name,state,established,discontinued,latitude,longitude
SALINA,KS,1858,,38.84,-97.61
DENVER,CO,1859,1905,39.73,-104.99
FRESNO,CA,1860,,36.74,-119.78
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing dataset",
			opts:    Options{},
			wantErr: "dataset is required",
		},
		{
			name:    "unknown dataset",
			opts:    Options{Dataset: "penguins"},
			wantErr: "invalid dataset",
		},
		{
			name:    "bad format",
			opts:    Options{Dataset: dataset.Bechdel, Formats: []string{"pdf"}},
			wantErr: "invalid format",
		},
		{
			name:    "bad style",
			opts:    Options{Dataset: dataset.Bechdel, Style: "brutalist"},
			wantErr: "invalid style",
		},
		{
			name:    "gif needs the map",
			opts:    Options{Dataset: dataset.Bechdel, Formats: []string{"gif"}},
			wantErr: "gif output requires",
		},
		{
			name:    "inverted year range",
			opts:    Options{Dataset: dataset.Bechdel, FromYear: 2000, ToYear: 1990},
			wantErr: "after end",
		},
		{
			name: "valid defaults",
			opts: Options{Dataset: dataset.Bechdel},
		},
		{
			name: "valid map gif",
			opts: Options{Dataset: dataset.PostOffices, Formats: []string{"gif"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Dataset: dataset.Bechdel}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	if opts.Style != DefaultStyle {
		t.Errorf("style = %q, want %q", opts.Style, DefaultStyle)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
	if opts.Ramp != "sunset" {
		t.Errorf("ramp = %q, want sunset", opts.Ramp)
	}
	if opts.Glyph.Positions != 4 {
		t.Errorf("glyph positions = %d, want 4", opts.Glyph.Positions)
	}

	mapOpts := Options{Dataset: dataset.PostOffices}
	if err := mapOpts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if mapOpts.Ramp != "ocean" {
		t.Errorf("map ramp = %q, want ocean", mapOpts.Ramp)
	}
	if mapOpts.Step != DefaultStep || mapOpts.FPS != DefaultFPS {
		t.Errorf("step/fps = %d/%d, want %d/%d", mapOpts.Step, mapOpts.FPS, DefaultStep, DefaultFPS)
	}
}

func TestExecuteBechdel(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Dataset: dataset.Bechdel,
		Input:   writeCSV(t, bechdelCSV),
		Formats: []string{FormatSVG, FormatPNG},
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.RowCount != 4 {
		t.Errorf("rows = %d, want 4", result.Stats.RowCount)
	}
	// Two distinct years in the fixture.
	if result.Stats.SummaryCount != 2 {
		t.Errorf("summaries = %d, want 2", result.Stats.SummaryCount)
	}
	if len(result.Skipped) != 0 {
		t.Errorf("skipped = %v, want none", result.Skipped)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok || !strings.Contains(string(svg), "<svg") {
		t.Error("missing svg artifact")
	}
	png, ok := result.Artifacts[FormatPNG]
	if !ok || len(png) == 0 {
		t.Error("missing png artifact")
	}
	if result.DatasetHash == "" {
		t.Error("missing dataset hash")
	}
}

func TestExecutePostOffices(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	opts := Options{
		Dataset:  dataset.PostOffices,
		Input:    writeCSV(t, postOfficeCSV),
		Formats:  []string{FormatGIF},
		FromYear: 1860,
		ToYear:   1900,
		Step:     20,
	}

	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.RowCount != 3 {
		t.Errorf("rows = %d, want 3", result.Stats.RowCount)
	}
	// 1860, 1880, 1900.
	if result.Stats.FrameCount != 3 {
		t.Errorf("frames = %d, want 3", result.Stats.FrameCount)
	}
	gif, ok := result.Artifacts[FormatGIF]
	if !ok || len(gif) == 0 {
		t.Error("missing gif artifact")
	}
}

func TestExecuteCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)
	opts := Options{
		Dataset: dataset.Bechdel,
		Input:   writeCSV(t, bechdelCSV),
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.CacheInfo.LoadHit || first.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	ci := second.CacheInfo
	if !ci.LoadHit || !ci.AggregateHit || !ci.LayoutHit || !ci.RenderHit {
		t.Errorf("second run cache info = %+v, want all hits", ci)
	}

	// Refresh bypasses every stage.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh run: %v", err)
	}
	if third.CacheInfo.LoadHit || third.CacheInfo.RenderHit {
		t.Errorf("refresh run cache info = %+v, want no hits", third.CacheInfo)
	}
}

func TestExecuteSkippedYearsSurviveCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)

	// A three-position axis rejects every four-digit year, so both
	// fixture years land in Skipped.
	cfg := glyph.DefaultConfig()
	cfg.Positions = 3
	opts := Options{
		Dataset: dataset.Bechdel,
		Input:   writeCSV(t, bechdelCSV),
		Formats: []string{FormatSVG},
		Glyph:   cfg,
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(first.Skipped) != 2 {
		t.Fatalf("first run skipped %d years, want 2", len(first.Skipped))
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Fatal("second run should hit the layout cache")
	}
	if len(second.Skipped) != len(first.Skipped) {
		t.Fatalf("cached run skipped %d years, want %d", len(second.Skipped), len(first.Skipped))
	}
	for i := range first.Skipped {
		if second.Skipped[i].Year != first.Skipped[i].Year {
			t.Errorf("skipped[%d].Year = %d, want %d", i, second.Skipped[i].Year, first.Skipped[i].Year)
		}
		if second.Skipped[i].Err.Error() != first.Skipped[i].Err.Error() {
			t.Errorf("skipped[%d] reason = %q, want %q",
				i, second.Skipped[i].Err, first.Skipped[i].Err)
		}
	}
}

func TestLoadBadPath(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	_, err := runner.Load(context.Background(), Options{
		Dataset: dataset.Bechdel,
		Input:   filepath.Join(t.TempDir(), "missing.csv"),
	})
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestHasFormat(t *testing.T) {
	opts := Options{Formats: []string{"svg", "gif"}}
	if !opts.HasFormat("gif") || opts.HasFormat("png") {
		t.Error("HasFormat mismatch")
	}
}
