// Command fmodinfo loads the FMOD libraries, spins up an engine instance,
// and reports what it finds: library version, voice pool, CPU and memory
// usage. Useful for checking an installation before debugging anything else.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/velora-audio/fmod-go/pkg/fmod"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

func main() {
	var (
		corePath   = flag.String("core", os.Getenv("FMOD_LIBRARY_PATH"), "path to the FMOD core library (default: system lookup)")
		studioPath = flag.String("studio", "", "path to the FMOD Studio library (optional)")
		channels   = flag.Int("channels", 64, "virtual voice pool size")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		fmod.SetLogger(logging.New(slog.New(handler)))
	}

	if err := fmod.LoadPath(*corePath, *studioPath); err != nil {
		if errors.Is(err, fmod.ErrNotBuilt) {
			fmt.Printf("platform not supported by the loader: %v\n", err)
			return
		}
		log.Fatalf("load FMOD: %v", err)
	}

	sys, err := fmod.Open(fmod.Config{MaxChannels: *channels})
	if err != nil {
		log.Fatalf("open system: %v", err)
	}
	defer func() {
		if rerr := sys.Release(); rerr != nil {
			log.Printf("release: %v", rerr)
		}
	}()

	ver, err := sys.Version()
	if err != nil {
		log.Fatalf("query version: %v", err)
	}
	fmt.Printf("FMOD %d.%02d.%02d\n", ver.Major, ver.Minor, ver.Patch)
	fmt.Printf("voice pool: %d\n", *channels)

	if err := sys.Update(); err != nil {
		log.Fatalf("update: %v", err)
	}
	usage, err := sys.CPUUsage()
	if err != nil {
		log.Fatalf("query cpu usage: %v", err)
	}
	fmt.Printf("cpu: dsp=%.2f%% stream=%.2f%% update=%.2f%%\n", usage.DSP, usage.Stream, usage.Update)

	cur, max, err := fmod.MemoryStats()
	if err != nil {
		log.Fatalf("query memory: %v", err)
	}
	fmt.Printf("memory: %d bytes current, %d bytes peak\n", cur, max)
}
