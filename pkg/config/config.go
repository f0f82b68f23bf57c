// Package config loads drawset configuration from TOML files.
//
// Configuration is layered: [Default] provides the base, [Load] decodes a
// file on top of it, and [Apply] copies non-empty overrides (typically
// command-line flags) over the result.
//
//	[canvas]
//	width = 800
//	padding = 16
//	flow = "row"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "1h"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/jinzhu/copier"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/cache"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/errors"
)

// Config is the complete drawset configuration.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
}

// Canvas configures layout and the rendered document.
type Canvas struct {
	Width       float32 `toml:"width"`
	Height      float32 `toml:"height"`
	Padding     float32 `toml:"padding"`
	LabelHeight float32 `toml:"label_height"`
	Flow        string  `toml:"flow"`
	Background  string  `toml:"background"`
}

// Cache selects the render cache backend.
type Cache struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	TTL       time.Duration `toml:"ttl"`
}

// Server configures the preview HTTP server.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:       800,
			Padding:     16,
			LabelHeight: 20,
			Flow:        "row",
		},
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     24 * time.Hour,
		},
		Server: Server{
			Addr:         ":8080",
			MaxBodyBytes: 1 << 20,
		},
		Log: Log{Level: "info"},
	}
}

// Load decodes the file at path on top of [Default]. Unknown keys are
// rejected so that typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// Apply copies every non-empty field of overrides onto dst. Zero values in
// overrides leave dst unchanged, so an override cannot reset a field to
// zero.
func Apply(dst *Config, overrides Config) error {
	opt := copier.Option{IgnoreEmpty: true}
	pairs := []struct{ to, from any }{
		{&dst.Canvas, &overrides.Canvas},
		{&dst.Cache, &overrides.Cache},
		{&dst.Server, &overrides.Server},
		{&dst.Log, &overrides.Log},
	}
	for _, p := range pairs {
		if err := copier.CopyWithOption(p.to, p.from, opt); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "apply config overrides")
		}
	}
	return nil
}

// Validate checks field values that decoding cannot.
func (c Config) Validate() error {
	if _, err := c.Layout(); err != nil {
		return err
	}
	if _, err := c.Background(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case cache.BackendNone, cache.BackendFile, cache.BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_body_bytes must not be negative")
	}
	return nil
}

// Layout returns the canvas layout described by the [canvas] section.
func (c Config) Layout() (canvas.Layout, error) {
	flow, err := canvas.FlowByName(c.Canvas.Flow)
	if err != nil {
		return canvas.Layout{}, err
	}
	l := canvas.Layout{
		Width:       c.Canvas.Width,
		Height:      c.Canvas.Height,
		Padding:     c.Canvas.Padding,
		LabelHeight: c.Canvas.LabelHeight,
		Flow:        flow,
	}
	if l.Width < 0 || l.Height < 0 || l.Padding < 0 || l.LabelHeight < 0 {
		return canvas.Layout{}, errors.New(errors.ErrCodeInvalidInput, "canvas extents must not be negative")
	}
	return l, nil
}

// Background parses the canvas background color. Empty means transparent.
func (c Config) Background() (canvas.Color, error) {
	if c.Canvas.Background == "" {
		return 0, nil
	}
	v, err := attr.Parse(attr.TypeUint32, c.Canvas.Background)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "canvas background")
	}
	return canvas.Color(v.Uint32()), nil
}

// CacheOptions returns the options for [cache.Open].
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend:   c.Cache.Backend,
		Dir:       c.Cache.Dir,
		RedisAddr: c.Cache.RedisAddr,
	}
}

// Level parses the log level.
func (c Config) Level() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidInput, err, "log level")
	}
	return level, nil
}
