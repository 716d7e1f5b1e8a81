package metric

import (
	"math"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Yessminech/Bachelor-Thesis/pkg/trace"
)

// Summarize reduces every series to the figures shown next to the plot. The
// camera whose latest offset is exactly zero is the PTP master.
func Summarize(series []trace.Series, thresholdNs float64) []OffsetSummary {
	summaries := make([]OffsetSummary, 0, len(series))

	for _, s := range series {
		summary := OffsetSummary{
			Camera:  s.Label,
			Samples: len(s.Points),
		}

		values := s.Values()
		if len(values) > 0 {
			latest, _ := s.Latest()
			summary.LatestNs = latest.OffsetNs
			summary.Master = latest.OffsetNs == 0

			abs := make([]float64, len(values))
			for i, v := range values {
				abs[i] = math.Abs(v)
				if abs[i] > thresholdNs {
					summary.AboveThreshold++
				}
			}
			summary.MaxAbsNs = floats.Max(abs)

			if len(values) > 1 {
				summary.MeanNs, summary.StdDevNs = stat.MeanStdDev(values, nil)
			} else {
				summary.MeanNs = values[0]
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

func LogSummary(summaries []OffsetSummary, thresholdNs float64) {
	for _, s := range summaries {
		name := s.Camera
		if s.Master {
			name = "Master (" + name + ")"
		}

		entry := log.WithFields(log.Fields{
			"samples":   s.Samples,
			"latest_ns": s.LatestNs,
			"mean_ns":   math.Round(s.MeanNs),
			"stddev_ns": math.Round(s.StdDevNs),
			"max_abs":   s.MaxAbsNs,
		})

		if s.AboveThreshold > 0 {
			entry.Warnf("%s exceeded %.0f ns in %d sample(s)", name, thresholdNs, s.AboveThreshold)
		} else {
			entry.Info(name)
		}
	}
}

func ExportSummary(path string, summaries []OffsetSummary) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating summary file")
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&summaries, f); err != nil {
		return errors.Wrapf(err, "writing summary %s", path)
	}

	log.Infof("Offset summary written to %s", path)
	return nil
}

// MasterCameras lists the cameras considered PTP master in the last sample.
func MasterCameras(summaries []OffsetSummary) string {
	var masters []string
	for _, s := range summaries {
		if s.Master {
			masters = append(masters, s.Camera)
		}
	}
	return strings.Join(masters, ",")
}
