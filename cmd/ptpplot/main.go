package main

import (
	"flag"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Yessminech/Bachelor-Thesis/pkg/common"
	"github.com/Yessminech/Bachelor-Thesis/pkg/config"
	"github.com/Yessminech/Bachelor-Thesis/pkg/display"
	"github.com/Yessminech/Bachelor-Thesis/pkg/metric"
	"github.com/Yessminech/Bachelor-Thesis/pkg/render"
	"github.com/Yessminech/Bachelor-Thesis/pkg/trace"
)

// Screen resolution used to size the window after the figure.
const windowDPI = 96

var (
	configPath = flag.String("config", "", "Path to an optional JSON plot configuration file")
	preset     = flag.String("preset", common.CameraPreset, "Built-in settings - choose from [camera, history]")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	headless   = flag.Bool("headless", false, "Only save the figure, do not open a window")
)

func setupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	flag.Parse()
	setupLogging(*verbosity)

	var (
		cfg config.PlotConfiguration
		err error
	)
	if *configPath != "" {
		cfg, err = config.ReadConfigurationFile(*configPath, *preset)
	} else {
		cfg, err = config.PresetConfiguration(*preset)
	}
	if err != nil {
		log.Fatal(err)
	}

	viewer := display.NewViewer(*headless, cfg.Title,
		int(cfg.WidthInches*windowDPI), int(cfg.HeightInches*windowDPI))

	if err := plotOffsets(&cfg, viewer); err != nil {
		log.Fatal(err)
	}
}

// plotOffsets runs load, select, render, save and show in that order.
func plotOffsets(cfg *config.PlotConfiguration, viewer display.Viewer) error {
	inputPath, err := trace.ResolveInput(cfg.InputPath)
	if err != nil {
		return err
	}

	dataset, err := trace.LoadDataset(inputPath)
	if err != nil {
		return err
	}

	series, err := dataset.SelectSeries(cfg.Selection, cfg.ColumnSuffix)
	if err != nil {
		return err
	}
	log.Infof("Plotting %d offset series over %d samples from %s", len(series), dataset.NumRows(), inputPath)

	summaries := metric.Summarize(series, cfg.ThresholdNs)
	metric.LogSummary(summaries, cfg.ThresholdNs)
	if masters := metric.MasterCameras(summaries); masters != "" {
		log.Debugf("Master clock: %s", masters)
	}
	if cfg.SummaryPath != "" {
		if err := metric.ExportSummary(cfg.SummaryPath, summaries); err != nil {
			return err
		}
	}

	figure, err := render.Render(series, render.OptionsFromConfiguration(cfg))
	if err != nil {
		return err
	}
	if err := figure.Save(cfg.OutputPath); err != nil {
		return err
	}

	return viewer.Show(cfg.OutputPath)
}
