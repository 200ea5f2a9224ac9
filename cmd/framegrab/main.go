// Framegrab - interactive camera viewer and frame grabber
//
// Opens the camera, shows a live preview window, and saves the current
// frame on SPACE. Quit with q or ESC. Saved frames land in the output
// directory as frame_<date>_<time>_<n>.jpg.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/teslashibe/go-framegrab/internal/config"
	"github.com/teslashibe/go-framegrab/internal/log"
	"github.com/teslashibe/go-framegrab/pkg/camera"
	"github.com/teslashibe/go-framegrab/pkg/capture"
	"github.com/teslashibe/go-framegrab/pkg/display"
	"github.com/teslashibe/go-framegrab/pkg/store"
	"github.com/teslashibe/go-framegrab/pkg/web"
)

func main() {
	config.LoadEnv()

	// Command line flags; env vars provide the defaults
	device := flag.Int("device", config.Device(), "Camera device index")
	preset := flag.String("preset", "", "Camera preset (default, 720p, 1080p)")
	width := flag.Int("width", 0, "Frame width (0 = preset default)")
	height := flag.Int("height", 0, "Frame height (0 = preset default)")
	fps := flag.Int("fps", 0, "Target framerate (0 = preset default)")
	quality := flag.Int("quality", 0, "JPEG quality 1-100 (0 = preset default)")
	outDir := flag.String("out", config.OutputDir(), "Directory for captured frames")
	httpAddr := flag.String("http", "", "Serve the status dashboard on this address (e.g. :8080)")
	poll := flag.Duration("poll", capture.DefaultPollTimeout, "Keypress poll timeout per frame")
	logLevel := flag.String("log-level", config.LogLevel(), "Log level (debug, info, warn, error)")
	flag.Parse()

	log.InitWithOptions(log.Options{Level: *logLevel, File: config.LogFile()})

	cfg := camera.DefaultConfig()
	if *preset != "" {
		p := camera.GetPreset(*preset)
		if p == nil {
			fmt.Fprintf(os.Stderr, "Unknown preset %q (available: %v)\n", *preset, camera.PresetNames())
			os.Exit(1)
		}
		cfg = *p
	}
	cfg.Device = *device
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *fps > 0 {
		cfg.Framerate = *fps
	}
	if *quality > 0 {
		cfg.Quality = *quality
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "Invalid config:", e)
		}
		os.Exit(1)
	}

	// The frames directory is created once here, never per save.
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error("output directory setup failed", "dir", *outDir, "error", err)
		os.Exit(1)
	}

	fmt.Println("📷 Framegrab")
	fmt.Printf("   Device: %d (%dx%d @ q%d)\n", cfg.Device, cfg.Width, cfg.Height, cfg.Quality)
	fmt.Printf("   Output: %s\n", *outDir)
	fmt.Println("   SPACE saves a frame, q or ESC quits")
	fmt.Println()

	log.Info("initializing camera", "device", cfg.Device)
	src, err := camera.Open(cfg)
	if err != nil {
		log.Error("camera open failed", "device", cfg.Device, "error", err)
		os.Exit(1)
	}
	log.Info("camera started", "width", cfg.Width, "height", cfg.Height)

	window := display.NewWindow("Framegrab")
	session := store.NewSession()

	// Handle Ctrl+C as a clean quit
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Shutting down...")
		cancel()
	}()

	var dashboard *web.Server
	if *httpAddr != "" {
		dashboard = web.NewServer(*httpAddr, *outDir, session, log.With("component", "web"))
		dashboard.StartAsync()
		defer dashboard.Shutdown()
	}

	loop := capture.NewLoop(src, window, store.NewJPEGStore(cfg.Quality), capture.NewNamer(*outDir),
		capture.WithPollTimeout(*poll),
		capture.WithLogger(log.With("session", session.ID())),
	)
	loop.OnSave = func(path string) {
		session.RecordSave(path)
		if dashboard != nil {
			dashboard.NotifySaved(filepath.Base(path))
		}
	}
	loop.OnSaveError = func(path string, err error) {
		session.RecordFailure()
		if dashboard != nil {
			dashboard.NotifySaveFailed(filepath.Base(path), err)
		}
	}

	res, runErr := loop.Run(ctx)

	stats := session.Stats()
	fmt.Printf("\n📊 Session %s\n", stats.ID)
	fmt.Printf("   Captured: %d frames (%d KB)\n", res.Saved, stats.Bytes/1024)
	if res.Failed > 0 {
		fmt.Printf("   Failed:   %d saves\n", res.Failed)
	}
	fmt.Printf("   Duration: %s\n", time.Since(stats.StartedAt).Round(time.Second))

	if runErr != nil {
		log.Error("capture loop failed", "error", runErr)
		os.Exit(1)
	}
	fmt.Println("👋 Goodbye!")
}
