package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/Yessminech/Bachelor-Thesis/pkg/common"
)

type PlotConfiguration struct {
	Preset string `json:"Preset"`

	InputPath   string `json:"InputPath"`
	OutputPath  string `json:"OutputPath"`
	SummaryPath string `json:"SummaryPath"`

	Selection    common.ColumnSelection `json:"Selection"`
	ColumnSuffix string                 `json:"ColumnSuffix"`
	ThresholdNs  float64                `json:"ThresholdNs"`

	Title  string `json:"Title"`
	XLabel string `json:"XLabel"`
	YLabel string `json:"YLabel"`

	WidthInches     float64 `json:"WidthInches"`
	HeightInches    float64 `json:"HeightInches"`
	LineWidthPoints float64 `json:"LineWidthPoints"`
}

// PresetConfiguration returns the built-in settings of one of the two plot
// flavours: "camera" reads the monitor output from the build directory and
// keeps only *_offset_ns columns, "history" plots every column but the first.
func PresetConfiguration(preset string) (PlotConfiguration, error) {
	cfg := PlotConfiguration{
		Preset:          preset,
		ThresholdNs:     common.DefaultThresholdNs,
		Title:           common.DefaultTitle,
		XLabel:          common.DefaultXLabel,
		YLabel:          common.DefaultYLabel,
		WidthInches:     common.DefaultWidthInches,
		HeightInches:    common.DefaultHeightInches,
		LineWidthPoints: common.DefaultLineWidthPoints,
	}

	switch preset {
	case common.CameraPreset:
		cfg.InputPath = "build/ptp_offset_history.csv"
		cfg.OutputPath = "ptp_offsets_plot.png"
		cfg.Selection = common.SuffixSelection
		cfg.ColumnSuffix = common.OffsetColumnSuffix
	case common.HistoryPreset:
		cfg.InputPath = "ptp_offset_history.csv"
		cfg.OutputPath = "ptp_offset_plot.png"
		cfg.Selection = common.PositionalSelection
	default:
		return PlotConfiguration{}, errors.Errorf("unknown preset %q", preset)
	}

	return cfg, nil
}

// ReadConfigurationFile loads a JSON file on top of the preset it names (or
// the fallback preset when the file leaves Preset empty). Zero values in the
// file keep the preset's values.
func ReadConfigurationFile(path string, fallbackPreset string) (PlotConfiguration, error) {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return PlotConfiguration{}, errors.Wrapf(err, "reading configuration %s", path)
	}

	var fileCfg PlotConfiguration
	if err := json.Unmarshal(byteValue, &fileCfg); err != nil {
		return PlotConfiguration{}, errors.Wrapf(err, "parsing configuration %s", path)
	}

	preset := fileCfg.Preset
	if preset == "" {
		preset = fallbackPreset
	}
	cfg, err := PresetConfiguration(preset)
	if err != nil {
		return PlotConfiguration{}, err
	}
	cfg.merge(fileCfg)

	return cfg, cfg.Validate()
}

func (c *PlotConfiguration) merge(o PlotConfiguration) {
	if o.InputPath != "" {
		c.InputPath = o.InputPath
	}
	if o.OutputPath != "" {
		c.OutputPath = o.OutputPath
	}
	if o.SummaryPath != "" {
		c.SummaryPath = o.SummaryPath
	}
	if o.Selection != "" {
		c.Selection = o.Selection
	}
	if o.ColumnSuffix != "" {
		c.ColumnSuffix = o.ColumnSuffix
	}
	if o.ThresholdNs != 0 {
		c.ThresholdNs = o.ThresholdNs
	}
	if o.Title != "" {
		c.Title = o.Title
	}
	if o.XLabel != "" {
		c.XLabel = o.XLabel
	}
	if o.YLabel != "" {
		c.YLabel = o.YLabel
	}
	if o.WidthInches != 0 {
		c.WidthInches = o.WidthInches
	}
	if o.HeightInches != 0 {
		c.HeightInches = o.HeightInches
	}
	if o.LineWidthPoints != 0 {
		c.LineWidthPoints = o.LineWidthPoints
	}
}

func (c *PlotConfiguration) Validate() error {
	switch c.Selection {
	case common.SuffixSelection:
		if c.ColumnSuffix == "" {
			return errors.New("suffix selection requires a ColumnSuffix")
		}
	case common.PositionalSelection:
	default:
		return errors.Errorf("unsupported column selection %q", c.Selection)
	}

	if c.InputPath == "" || c.OutputPath == "" {
		return errors.New("input and output paths must be set")
	}
	if c.WidthInches <= 0 || c.HeightInches <= 0 {
		return errors.Errorf("invalid figure size %.1fx%.1f in", c.WidthInches, c.HeightInches)
	}
	if c.LineWidthPoints <= 0 {
		return errors.Errorf("invalid line width %.1f pt", c.LineWidthPoints)
	}

	return nil
}
