package config

import "fmt"

// Config holds the site layout: which directories contain gallery images,
// which HTML files reference them, and how thumbnails are generated.
type Config struct {
	ImageDirs    []string
	GalleryFiles []string
	Thumbnails   ThumbnailsConfig
}

type ThumbnailsConfig struct {
	// MaxSize is the maximum dimension (width or height) of a thumbnail
	MaxSize int
	// Quality is the JPEG quality (1-100, lower = smaller file size)
	Quality int
}

// Default returns the site configuration. The lists are maintained here,
// in code, and are relative to the site root the tools run from.
func Default() *Config {
	return &Config{
		ImageDirs: []string{
			"images/Not Sightly",
			"images/la vida/ben rose la vida",
			"images/adlad",
			"images/Headshots",
			"images/sfb",
			"images/multiself",
			"images/videos",
			"images/la vida",
		},
		GalleryFiles: []string{
			"index.html",
			"lifeIsADream.html",
			"headshots.html",
			"adlad.html",
			"stupidBird.html",
			"multiself.html",
			"not-sightly.html",
		},
		Thumbnails: ThumbnailsConfig{
			MaxSize: 800,
			Quality: 75,
		},
	}
}

// Validate checks if the configuration fields are usable
func (c *Config) Validate() error {
	if len(c.ImageDirs) == 0 {
		return fmt.Errorf("at least one image directory is required")
	}
	for _, dir := range c.ImageDirs {
		if dir == "" {
			return fmt.Errorf("image directory entries must not be empty")
		}
	}
	if len(c.GalleryFiles) == 0 {
		return fmt.Errorf("at least one gallery file is required")
	}
	for _, name := range c.GalleryFiles {
		if name == "" {
			return fmt.Errorf("gallery file entries must not be empty")
		}
	}
	if c.Thumbnails.MaxSize <= 0 {
		return fmt.Errorf("thumbnail max size must be positive")
	}
	if c.Thumbnails.Quality < 1 || c.Thumbnails.Quality > 100 {
		return fmt.Errorf("thumbnail quality must be between 1 and 100")
	}
	return nil
}
