package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joyjma/artisticportfolio/config"
	"github.com/joyjma/artisticportfolio/thumbnailer"
)

func main() {
	fmt.Println("🖼️  Creating thumbnails for gallery images...")
	fmt.Println(strings.Repeat("=", 60))

	// Report interrupts instead of dying mid-report
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\n⚠ Interrupted by user")
		os.Exit(0)
	}()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
		os.Exit(1)
	}

	sum := thumbnailer.New(cfg).Run()

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("✅ Complete! Processed %d directories.\n", sum.Dirs)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Check the 'thumbnails' folders in each image directory")
	fmt.Println("2. The gallery pages will now load faster with compressed images")
	fmt.Println("3. High-resolution images will still load in the lightbox")
}
