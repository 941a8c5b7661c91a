package rewriter

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/joyjma/artisticportfolio/common"
	"github.com/joyjma/artisticportfolio/config"
	"github.com/spf13/afero"
)

// imgTagPattern matches the gallery <img> tags whose src points at a
// full-resolution image under images/. This is plain text matching, not an
// HTML parse. A tag that puts other attributes before src or quotes src
// with single quotes does not match and is left alone.
var imgTagPattern = regexp.MustCompile(`<img\s+src="(images/[^"]+\.(jpg|JPG|jpeg|JPEG|png|PNG))"([^>]*?)>`)

// Rewriter points gallery HTML files at the generated thumbnails while
// keeping the full-resolution path in a data-fullres attribute for the
// lightbox viewer.
type Rewriter struct {
	fs  afero.Fs
	cfg *config.Config
	out io.Writer
}

// New creates a rewriter on the OS filesystem, reporting to stdout
func New(cfg *config.Config) *Rewriter {
	return NewWithFS(afero.NewOsFs(), cfg, os.Stdout)
}

// NewWithFS creates a rewriter on the given filesystem, reporting to out
func NewWithFS(fs afero.Fs, cfg *config.Config, out io.Writer) *Rewriter {
	return &Rewriter{fs: fs, cfg: cfg, out: out}
}

// Summary reports what a run accomplished
type Summary struct {
	Updated int // files whose content changed
}

// Run rewrites every configured gallery file in order. Missing files are
// reported and skipped; an error on one file does not stop the run.
func (r *Rewriter) Run() Summary {
	var sum Summary
	for _, name := range r.cfg.GalleryFiles {
		exists, err := afero.Exists(r.fs, name)
		if err != nil || !exists {
			fmt.Fprintf(r.out, "⚠ %s not found\n", name)
			continue
		}

		changed, err := r.RewriteFile(name)
		if err != nil {
			fmt.Fprintf(r.out, "✗ Error updating %s: %v\n", name, err)
			continue
		}

		if changed {
			fmt.Fprintf(r.out, "✓ Updated %s\n", name)
			sum.Updated++
		} else {
			fmt.Fprintf(r.out, "- %s (no changes needed)\n", name)
		}
	}
	return sum
}

// RewriteFile rewrites the img tags of a single HTML file in place and
// reports whether the file changed. The file is only written back when its
// content actually changed, so running twice is a no-op.
func (r *Rewriter) RewriteFile(path string) (bool, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	content := string(data)
	updated := imgTagPattern.ReplaceAllStringFunc(content, rewriteTag)
	if updated == content {
		return false, nil
	}

	if err := afero.WriteFile(r.fs, path, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("failed to write file: %w", err)
	}
	return true, nil
}

// rewriteTag rewrites one matched img tag. Tags that already point into a
// thumbnails folder or already carry data-fullres are returned unchanged.
func rewriteTag(tag string) string {
	m := imgTagPattern.FindStringSubmatch(tag)
	if m == nil {
		return tag
	}
	fullPath, rest := m[1], m[3]

	if strings.Contains(fullPath, "/thumbnails/") {
		return tag
	}
	if strings.Contains(rest, "data-fullres=") {
		return tag
	}

	if !strings.Contains(rest, "loading=") {
		rest += ` loading="lazy"`
	}
	return fmt.Sprintf(`<img src="%s" data-fullres="%s"%s>`, common.ThumbPath(fullPath), fullPath, rest)
}
