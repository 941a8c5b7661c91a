package thumbnailer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joyjma/artisticportfolio/common"
	"github.com/joyjma/artisticportfolio/config"
	"github.com/spf13/afero"
)

// Thumbnailer generates compressed thumbnails for the configured gallery
// image directories. Each directory gets a thumbnails/ subfolder with a
// .jpg per source image.
type Thumbnailer struct {
	fs  afero.Fs
	cfg *config.Config
	out io.Writer
}

// New creates a thumbnailer on the OS filesystem, reporting to stdout
func New(cfg *config.Config) *Thumbnailer {
	return NewWithFS(afero.NewOsFs(), cfg, os.Stdout)
}

// NewWithFS creates a thumbnailer on the given filesystem, reporting to out
func NewWithFS(fs afero.Fs, cfg *config.Config, out io.Writer) *Thumbnailer {
	return &Thumbnailer{fs: fs, cfg: cfg, out: out}
}

// Summary reports what a run accomplished
type Summary struct {
	Dirs   int // directories that existed and were processed
	Images int // thumbnails successfully written
}

// Run processes every configured image directory in order. A missing
// directory is reported and skipped without counting as processed; no
// failure aborts the run.
func (t *Thumbnailer) Run() Summary {
	var sum Summary
	for _, dir := range t.cfg.ImageDirs {
		exists, err := afero.DirExists(t.fs, dir)
		if err != nil || !exists {
			fmt.Fprintf(t.out, "⚠ Directory not found: %s\n", dir)
			continue
		}
		sum.Images += t.processDir(dir)
		sum.Dirs++
	}
	return sum
}

// processDir creates a thumbnail for every image file directly inside dir
// and returns how many were written. Failures on single images are
// reported and skipped.
func (t *Thumbnailer) processDir(dir string) int {
	thumbsDir := filepath.Join(dir, common.ThumbsDirName)
	if err := t.fs.MkdirAll(thumbsDir, 0755); err != nil {
		fmt.Fprintf(t.out, "✗ Error processing %s: %v\n", dir, err)
		return 0
	}

	fmt.Fprintf(t.out, "\n📁 Processing: %s\n", dir)
	fmt.Fprintln(t.out, strings.Repeat("─", 60))

	entries, err := afero.ReadDir(t.fs, dir)
	if err != nil {
		fmt.Fprintf(t.out, "✗ Error processing %s: %v\n", dir, err)
		return 0
	}

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !common.IsImageFile(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(dir, entry.Name())
		thumbPath := filepath.Join(thumbsDir, common.ThumbName(entry.Name()))

		res, err := common.CreateThumbnail(t.fs, srcPath, thumbPath,
			t.cfg.Thumbnails.MaxSize, t.cfg.Thumbnails.Quality)
		if err != nil {
			fmt.Fprintf(t.out, "✗ Error processing %s: %v\n", srcPath, err)
			continue
		}

		fmt.Fprintf(t.out, "✓ %s\n", entry.Name())
		fmt.Fprintf(t.out, "  %.1fKB → %.1fKB (%.1f%% reduction)\n",
			float64(res.OriginalSize)/1024, float64(res.ThumbSize)/1024, res.Reduction())
		processed++
	}

	fmt.Fprintf(t.out, "Processed %d images in %s\n", processed, filepath.Base(dir))
	return processed
}
