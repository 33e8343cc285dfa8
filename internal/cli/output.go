package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moharchaudhuri17/tidytuesday/pkg/pipeline"
)

// basePath derives the base output path from the --output flag. A known
// format extension is stripped so "chart.svg" works as a base for
// multi-format output.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered format to base.format and prints
// the result lines.
func writeArtifacts(result *pipeline.Result, formats []string, base string) error {
	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			return fmt.Errorf("missing %s artifact", format)
		}
		path := base + "." + format
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(result.Stats.RowCount, result.Stats.SummaryCount, result.Stats.FrameCount, result.CacheInfo.RenderHit)
	return nil
}
