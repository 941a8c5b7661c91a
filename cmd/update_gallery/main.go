package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joyjma/artisticportfolio/config"
	"github.com/joyjma/artisticportfolio/rewriter"
)

func main() {
	fmt.Println("🔧 Updating gallery HTML files to use thumbnails...")
	fmt.Println(strings.Repeat("=", 60))

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

	sum := rewriter.New(cfg).Run()

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("✅ Updated %d files\n", sum.Updated)
	fmt.Println("\nYour galleries will now load much faster!")
	fmt.Println("Thumbnails display in gallery, high-res loads in lightbox.")
}
