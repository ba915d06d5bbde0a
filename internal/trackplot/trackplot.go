// Package trackplot exports top-down plots of the race tracks: PNG images through
// gonum/plot and interactive HTML through go-echarts.
package trackplot

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/robotrace/engine/track"
	"github.com/Carmen-Shannon/robotrace/internal/monitoring"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrUnknownFormat is returned for export formats other than png, html and both.
var ErrUnknownFormat = errors.New("unknown export format")

// Export formats.
const (
	FormatPNG  = "png"
	FormatHTML = "html"
	FormatBoth = "both"
)

// laneColors is one color per lane, inner to outer.
var laneColors = []color.Color{
	color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff},
	color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
	color.RGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff},
	color.RGBA{R: 0x3e, G: 0x49, B: 0x89, A: 0xff},
}

type settings struct {
	samples int
	lanes   []int
	size    vg.Length
}

// Option configures a plot export.
type Option func(*settings)

// WithSamples sets the number of samples per lane.
func WithSamples(n int) Option {
	return func(s *settings) {
		if n >= 2 {
			s.samples = n
		}
	}
}

// WithLanes selects the lanes to plot.
func WithLanes(lanes ...int) Option {
	return func(s *settings) {
		if len(lanes) > 0 {
			s.lanes = lanes
		}
	}
}

// WithSize sets the edge length of PNG images in inches.
func WithSize(inches float64) Option {
	return func(s *settings) {
		if inches > 0 {
			s.size = vg.Length(inches) * vg.Inch
		}
	}
}

func newSettings(options []Option) *settings {
	s := &settings{
		samples: 200,
		lanes:   []int{1, 2, 3, 4},
		size:    8 * vg.Inch,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// sampled is the centerline and lanes of one track.
type sampled struct {
	center []mgl64.Vec3
	lanes  map[int][]mgl64.Vec3
	extent float64
}

func sample(ctx context.Context, tr track.Track, s *settings) (*sampled, error) {
	center, err := track.SampleCenterline(tr, s.samples)
	if err != nil {
		return nil, err
	}
	lanes, err := track.SampleLanes(ctx, tr, s.lanes, s.samples)
	if err != nil {
		return nil, err
	}
	out := &sampled{center: center, lanes: lanes}
	for _, pts := range lanes {
		for _, p := range pts {
			out.extent = math.Max(out.extent, math.Max(math.Abs(p.X()), math.Abs(p.Y())))
		}
	}
	out.extent = math.Ceil(out.extent + 1)
	return out, nil
}

func toXYs(pts []mgl64.Vec3) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X(), Y: p.Y()}
	}
	return xys
}

// WritePNG renders a top-down PNG of the track's centerline and lanes to path.
//
// Parameters:
//   - ctx: cancels lane sampling
//   - tr: the track to plot
//   - path: the output file, which must end in .png
//   - options: plot options
//
// Returns:
//   - error: a sampling, plotting or file error
func WritePNG(ctx context.Context, tr track.Track, path string, options ...Option) error {
	s := newSettings(options)
	data, err := sample(ctx, tr, s)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Track %q - %d segments", tr.Name(), tr.Segments())
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	// same range on both axes keeps the track undistorted in a square image
	p.X.Min, p.X.Max = -data.extent, data.extent
	p.Y.Min, p.Y.Max = -data.extent, data.extent
	p.Add(plotter.NewGrid())

	center, err := plotter.NewLine(toXYs(data.center))
	if err != nil {
		return err
	}
	center.Width = vg.Points(0.5)
	center.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(center)
	p.Legend.Add("centerline", center)

	for _, lane := range s.lanes {
		line, err := plotter.NewLine(toXYs(data.lanes[lane]))
		if err != nil {
			return err
		}
		line.Color = laneColors[(lane-1+len(laneColors))%len(laneColors)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("lane %d", lane), line)
	}

	if err := p.Save(s.size, s.size, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// scatterFor builds the interactive chart of one track.
func scatterFor(ctx context.Context, tr track.Track, s *settings) (*charts.Scatter, error) {
	data, err := sample(ctx, tr, s)
	if err != nil {
		return nil, err
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Robot Race Tracks", Width: "720px", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Track %s", tr.Name()), Subtitle: fmt.Sprintf("segments=%d lane_width=%.2f", tr.Segments(), tr.LaneWidth())}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -data.extent, Max: data.extent, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -data.extent, Max: data.extent, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("centerline", scatterData(data.center), charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	for _, lane := range s.lanes {
		scatter.AddSeries(fmt.Sprintf("lane %d", lane), scatterData(data.lanes[lane]), charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	}
	return scatter, nil
}

func scatterData(pts []mgl64.Vec3) []opts.ScatterData {
	out := make([]opts.ScatterData, len(pts))
	for i, p := range pts {
		out[i] = opts.ScatterData{Value: []interface{}{p.X(), p.Y()}}
	}
	return out
}

// WriteHTML renders an interactive chart of every track onto one HTML page.
//
// Parameters:
//   - ctx: cancels lane sampling
//   - w: the destination
//   - tracks: the tracks to chart, in page order
//   - options: plot options
//
// Returns:
//   - error: a sampling or rendering error
func WriteHTML(ctx context.Context, w io.Writer, tracks []track.Track, options ...Option) error {
	s := newSettings(options)
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	for _, tr := range tracks {
		scatter, err := scatterFor(ctx, tr, s)
		if err != nil {
			return err
		}
		page.AddCharts(scatter)
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render tracks page: %w", err)
	}
	return nil
}

// Export writes the plots of tracks into dir: one <name>.png per track and/or a
// single tracks.html page.
//
// Parameters:
//   - ctx: cancels lane sampling
//   - dir: the output directory, created if missing
//   - format: FormatPNG, FormatHTML or FormatBoth
//   - tracks: the tracks to export
//   - options: plot options
//
// Returns:
//   - []string: the files written
//   - error: ErrUnknownFormat or the first export error
func Export(ctx context.Context, dir, format string, tracks []track.Track, options ...Option) ([]string, error) {
	format = strings.ToLower(format)
	wantPNG := format == FormatPNG || format == FormatBoth
	wantHTML := format == FormatHTML || format == FormatBoth
	if !wantPNG && !wantHTML {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	if wantPNG {
		for _, tr := range tracks {
			path := filepath.Join(dir, tr.Name()+".png")
			if err := WritePNG(ctx, tr, path, options...); err != nil {
				return written, err
			}
			monitoring.Logf("[Trackplot] wrote %s", path)
			written = append(written, path)
		}
	}
	if wantHTML {
		path := filepath.Join(dir, "tracks.html")
		f, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", path, err)
		}
		err = WriteHTML(ctx, f, tracks, options...)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return written, err
		}
		monitoring.Logf("[Trackplot] wrote %s", path)
		written = append(written, path)
	}
	return written, nil
}
