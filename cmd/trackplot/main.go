// Command trackplot exports top-down plots of the race tracks.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/Carmen-Shannon/robotrace/internal/trackplot"
)

var (
	trackNames = flag.String("track", "all", "comma-separated track presets, or all")
	outDir     = flag.String("out", "plots", "output directory")
	format     = flag.String("format", trackplot.FormatBoth, "png, html or both")
	samples    = flag.Int("samples", 200, "samples per lane")
	laneWidth  = flag.Float64("lane-width", track.DefaultLaneWidth, "lane width")
)

func main() {
	flag.Parse()

	names := track.PresetNames()
	if *trackNames != "all" {
		names = strings.Split(*trackNames, ",")
	}

	tracks := make([]track.Track, 0, len(names))
	for _, n := range names {
		tr, err := track.Preset(strings.TrimSpace(n), track.WithLaneWidth(*laneWidth))
		if err != nil {
			log.Fatalf("trackplot: %v", err)
		}
		tracks = append(tracks, tr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	files, err := trackplot.Export(ctx, *outDir, *format, tracks, trackplot.WithSamples(*samples))
	if err != nil {
		log.Fatalf("trackplot: %v", err)
	}
	log.Printf("trackplot: wrote %d files to %s", len(files), *outDir)
}
