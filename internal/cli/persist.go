package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/sparsemat/sparse"
)

// resultTimeFormat stamps generated file names to the second; the random
// uuid suffix disambiguates results created within the same second.
const resultTimeFormat = "20060102-150405"

// resultFileName generates a unique file name for a persisted result.
func resultFileName(prefix string, now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%s-%s.txt", prefix, now.Format(resultTimeFormat), suffix)
}

// persistResult writes res into the resolved output directory, creating
// the directory if needed, and returns the full path. Flag beats config:
// --out-dir wins over the config file's output_dir.
func persistResult(opts *opOptions, res *sparse.Matrix) (string, error) {
	dir := opts.Config.OutputDir
	if opts.OutDir != "" {
		dir = opts.OutDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %q: %w", dir, err)
	}

	path := filepath.Join(dir, resultFileName(opts.Config.FilePrefix, time.Now()))
	if err := res.Save(path); err != nil {
		return "", fmt.Errorf("write result %q: %w", path, err)
	}
	slog.Info("result saved", "path", path, "nnz", res.NNZ())
	return path, nil
}
