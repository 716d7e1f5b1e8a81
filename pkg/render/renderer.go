package render

import (
	"math"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/Yessminech/Bachelor-Thesis/pkg/common"
	"github.com/Yessminech/Bachelor-Thesis/pkg/config"
	"github.com/Yessminech/Bachelor-Thesis/pkg/trace"
)

type Options struct {
	Title  string
	XLabel string
	YLabel string

	ThresholdNs float64

	Width     vg.Length
	Height    vg.Length
	LineWidth vg.Length
}

func OptionsFromConfiguration(cfg *config.PlotConfiguration) Options {
	return Options{
		Title:       cfg.Title,
		XLabel:      cfg.XLabel,
		YLabel:      cfg.YLabel,
		ThresholdNs: cfg.ThresholdNs,
		Width:       vg.Length(cfg.WidthInches) * vg.Inch,
		Height:      vg.Length(cfg.HeightInches) * vg.Inch,
		LineWidth:   vg.Points(cfg.LineWidthPoints),
	}
}

// Figure is a rendered plot: one line per offset series followed by the
// threshold line.
type Figure struct {
	Plot      *plot.Plot
	Lines     []*plotter.Line
	Labels    []string
	Threshold *plotter.Function

	width  vg.Length
	height vg.Length
}

func Render(series []trace.Series, opts Options) (*Figure, error) {
	p := plot.New()

	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.BackgroundColor = colornames.White
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(5)

	p.Add(plotter.NewGrid())

	fig := &Figure{
		Plot:   p,
		width:  opts.Width,
		height: opts.Height,
	}

	for i, s := range series {
		line, err := plotter.NewLine(toXYs(s))
		if err != nil {
			return nil, errors.Wrapf(err, "plotting series %s", s.Column)
		}
		line.LineStyle.Width = opts.LineWidth
		line.LineStyle.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(s.Label, line)

		fig.Lines = append(fig.Lines, line)
		fig.Labels = append(fig.Labels, s.Label)
		log.Tracef("Series %s: %d points", s.Label, len(s.Points))
	}

	threshold := opts.ThresholdNs
	fig.Threshold = plotter.NewFunction(func(float64) float64 { return threshold })
	fig.Threshold.LineStyle.Color = colornames.Red
	fig.Threshold.LineStyle.Width = vg.Points(1)
	fig.Threshold.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(fig.Threshold)
	p.Legend.Add(common.ThresholdLabel, fig.Threshold)

	// The function has no data range of its own, keep it in view.
	p.Y.Min = math.Min(p.Y.Min, threshold)
	p.Y.Max = math.Max(p.Y.Max, threshold)

	return fig, nil
}

func toXYs(s trace.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.Points))
	for i, point := range s.Points {
		pts[i].X = float64(point.Sample)
		pts[i].Y = point.OffsetNs
	}
	return pts
}

// NumLines counts the data series plus the threshold line.
func (f *Figure) NumLines() int {
	n := len(f.Lines)
	if f.Threshold != nil {
		n++
	}
	return n
}

// Save writes the figure as PNG, replacing any existing file.
func (f *Figure) Save(path string) error {
	writer, err := f.Plot.WriterTo(f.width, f.height, "png")
	if err != nil {
		return errors.Wrap(err, "rendering figure")
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	if _, err := writer.WriteTo(out); err != nil {
		out.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}

	log.Infof("Plot saved to %s", path)
	return nil
}
