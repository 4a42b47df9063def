// Package config provides Viper-based configuration management for chartkit
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/layout"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/normalize"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/render"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transition"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/vector"
)

// Config represents the complete chartkit configuration
type Config struct {
	Chart     ChartConfig     `mapstructure:"chart"`
	Style     layout.Style    `mapstructure:"style"`
	Animation AnimationConfig `mapstructure:"animation"`
	Render    RenderConfig    `mapstructure:"render"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Output    OutputConfig    `mapstructure:"output"`
}

// ChartConfig contains chart geometry settings
type ChartConfig struct {
	Kind        string  `mapstructure:"kind"`
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	Range       string  `mapstructure:"range"`
	ShowAxis    bool    `mapstructure:"show_axis"`
	ShowGrid    bool    `mapstructure:"show_grid"`
	GridCells   int     `mapstructure:"grid_cells"`
	LabelFormat string  `mapstructure:"label_format"`
}

// AnimationConfig contains transition settings
type AnimationConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Interval time.Duration `mapstructure:"interval"`
	Easing   string        `mapstructure:"easing"`
	Padding  string        `mapstructure:"padding"`
}

// RenderConfig contains image output settings
type RenderConfig struct {
	Format   string  `mapstructure:"format"`
	Margin   float64 `mapstructure:"margin"`
	FontSize float64 `mapstructure:"font_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Color  string `mapstructure:"color"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set config file if specified
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .chartkit.yaml
		v.SetConfigName(".chartkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/chartkit")
	}

	// Environment variables (CHARTKIT_CHART_KIND, CHARTKIT_ANIMATION_DURATION, ...)
	v.SetEnvPrefix("CHARTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	// Chart defaults
	opts := chartkit.DefaultOptions()
	v.SetDefault("chart.kind", string(opts.Kind))
	v.SetDefault("chart.width", opts.Width)
	v.SetDefault("chart.height", opts.Height)
	v.SetDefault("chart.range", "")
	v.SetDefault("chart.show_axis", true)
	v.SetDefault("chart.show_grid", false)
	v.SetDefault("chart.grid_cells", opts.GridCells)
	v.SetDefault("chart.label_format", "")

	// Style defaults
	style := layout.DefaultStyle()
	v.SetDefault("style.gap_size", style.GapSize)
	v.SetDefault("style.bar_label_width", style.BarLabelWidth)
	v.SetDefault("style.bar_label_offset", style.BarLabelOffset)
	v.SetDefault("style.column_label_height", style.ColumnLabelHeight)
	v.SetDefault("style.column_label_offset", style.ColumnLabelOffset)
	v.SetDefault("style.line_label_gutter", style.LineLabelGutter)
	v.SetDefault("style.line_label_margin", style.LineLabelMargin)
	v.SetDefault("style.line_label_width", style.LineLabelWidth)
	v.SetDefault("style.line_label_height", style.LineLabelHeight)
	v.SetDefault("style.pie_label_radius", style.PieLabelRadius)
	v.SetDefault("style.pie_label_width", style.PieLabelWidth)
	v.SetDefault("style.pie_label_height", style.PieLabelHeight)

	// Animation defaults
	v.SetDefault("animation.duration", transition.DefaultDuration)
	v.SetDefault("animation.interval", transition.DefaultInterval)
	v.SetDefault("animation.easing", "ease-in-out")
	v.SetDefault("animation.padding", "auto")

	// Render defaults
	v.SetDefault("render.format", "svg")
	v.SetDefault("render.margin", render.DefaultMargin)
	v.SetDefault("render.font_size", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Output defaults
	v.SetDefault("output.color", "auto")
	v.SetDefault("output.pretty", false)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	// Validate chart
	if _, ok := models.ParseKind(cfg.Chart.Kind); !ok {
		return fmt.Errorf("invalid chart kind: %s (must be bar, column, line, or pie)", cfg.Chart.Kind)
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", cfg.Chart.Width, cfg.Chart.Height)
	}
	if cfg.Chart.GridCells < 0 {
		return fmt.Errorf("invalid grid cells: %d", cfg.Chart.GridCells)
	}
	if _, err := cfg.Chart.ValueRange(); err != nil {
		return err
	}

	// Validate animation
	if cfg.Animation.Duration < 0 {
		return fmt.Errorf("invalid animation duration: %s", cfg.Animation.Duration)
	}
	if cfg.Animation.Interval <= 0 {
		return fmt.Errorf("invalid animation interval: %s (must be positive)", cfg.Animation.Interval)
	}
	if _, err := transition.ParseEasing(cfg.Animation.Easing); err != nil {
		return err
	}
	if _, err := parsePadding(cfg.Animation.Padding); err != nil {
		return err
	}

	// Validate render
	if _, err := render.FormatFromPath("chart." + cfg.Render.Format); err != nil {
		return fmt.Errorf("invalid render format: %s (must be one of %s)", cfg.Render.Format, strings.Join(render.Formats(), ", "))
	}
	if cfg.Render.Margin < 0 || cfg.Render.FontSize <= 0 {
		return fmt.Errorf("invalid render margin %g or font size %g", cfg.Render.Margin, cfg.Render.FontSize)
	}

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	// Validate output
	if _, err := output.ParseColorMode(cfg.Output.Color); err != nil {
		return err
	}

	return nil
}

// ValueRange returns the configured value range, or nil when the range is
// derived from the data.
func (c ChartConfig) ValueRange() (*normalize.Range, error) {
	if strings.TrimSpace(c.Range) == "" {
		return nil, nil
	}
	r, err := normalize.ParseRange(c.Range)
	if err != nil {
		return nil, fmt.Errorf("invalid chart range: %w", err)
	}
	return &r, nil
}

// SlogLevel returns the slog level for the configured logging level
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// parsePadding resolves a padding name. "auto" (or empty) returns nil so the
// chart kind picks the policy.
func parsePadding(name string) (*vector.Padding, error) {
	var p vector.Padding
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return nil, nil
	case "zero":
		p = vector.PadZero
	case "last":
		p = vector.PadLast
	default:
		return nil, fmt.Errorf("invalid animation padding: %s (must be auto, zero, or last)", name)
	}
	return &p, nil
}

// ChartOptions converts the chart, style and animation settings into
// library options.
func (c *Config) ChartOptions() (chartkit.Options, error) {
	kind, ok := models.ParseKind(c.Chart.Kind)
	if !ok {
		return chartkit.Options{}, fmt.Errorf("%w: %q", chartkit.ErrUnknownKind, c.Chart.Kind)
	}
	r, err := c.Chart.ValueRange()
	if err != nil {
		return chartkit.Options{}, err
	}
	easing, err := transition.ParseEasing(c.Animation.Easing)
	if err != nil {
		return chartkit.Options{}, err
	}
	padding, err := parsePadding(c.Animation.Padding)
	if err != nil {
		return chartkit.Options{}, err
	}

	showAxis := c.Chart.ShowAxis
	opts := chartkit.Options{
		Kind:      kind,
		Range:     r,
		Width:     c.Chart.Width,
		Height:    c.Chart.Height,
		Style:     c.Style,
		ShowAxis:  &showAxis,
		ShowGrid:  c.Chart.ShowGrid,
		GridCells: c.Chart.GridCells,
		Padding:   padding,
		Easing:    easing,
	}
	return opts, nil
}

// Transition returns the transition duration and the driver tick interval.
func (c *Config) Transition() (duration, interval time.Duration) {
	return c.Animation.Duration, c.Animation.Interval
}

// Renderer returns a renderer using the configured margin and font size.
func (c *Config) Renderer() *render.Renderer {
	theme := render.DefaultTheme()
	theme.FontSize = vg.Length(c.Render.FontSize)
	r := render.New(theme)
	r.Margin = c.Render.Margin
	return r
}
