// Package config loads the intersection driver configuration
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/goccy/go-yaml"

	"github.com/anggasct/trafficlight"
)

const (
	DefaultLights   = 1
	DefaultVehicles = 3
	DefaultDuration = 20 * time.Second
)

type Config struct {
	Light        *LightConfig        `yaml:"light"`
	Intersection *IntersectionConfig `yaml:"intersection"`
	Log          *LogConfig          `yaml:"log"`
}

type LightConfig struct {
	MinCycle time.Duration `yaml:"min_cycle"`
	MaxCycle time.Duration `yaml:"max_cycle"`
	Tick     time.Duration `yaml:"tick"`
	Seed     int64         `yaml:"seed"`
}

type IntersectionConfig struct {
	Lights   int           `yaml:"lights"`
	Vehicles int           `yaml:"vehicles"`
	Duration time.Duration `yaml:"duration"`
}

type LogConfig struct {
	Level slog.Level `yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Light: &LightConfig{
			MinCycle: trafficlight.DefaultMinCycle,
			MaxCycle: trafficlight.DefaultMaxCycle,
			Tick:     trafficlight.DefaultTick,
		},
		Intersection: &IntersectionConfig{
			Lights:   DefaultLights,
			Vehicles: DefaultVehicles,
			Duration: DefaultDuration,
		},
		Log: &LogConfig{
			Level: slog.LevelInfo,
		},
	}
}

// Load reads a YAML configuration from a file path or a http(s)://, file://
// or s3:// URL. Fields missing from the document keep their defaults.
func Load(ctx context.Context, src string) (*Config, error) {
	config := Default()
	b, err := loadURL(ctx, src)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", src, err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration and returns a *trafficlight.ConfigurationError
func (c *Config) Validate() error {
	if c.Light == nil || c.Intersection == nil || c.Log == nil {
		return trafficlight.NewConfigurationError("config", "light, intersection and log sections cannot be null")
	}
	if c.Light.MinCycle <= 0 {
		return trafficlight.NewConfigurationError("light", fmt.Sprintf("min_cycle must be positive, got %s", c.Light.MinCycle))
	}
	if c.Light.MaxCycle < c.Light.MinCycle {
		return trafficlight.NewConfigurationError("light", fmt.Sprintf("max_cycle %s is shorter than min_cycle %s", c.Light.MaxCycle, c.Light.MinCycle))
	}
	if c.Light.Tick <= 0 {
		return trafficlight.NewConfigurationError("light", fmt.Sprintf("tick must be positive, got %s", c.Light.Tick))
	}
	if c.Intersection.Lights < 1 {
		return trafficlight.NewConfigurationError("intersection", fmt.Sprintf("lights must be at least 1, got %d", c.Intersection.Lights))
	}
	if c.Intersection.Vehicles < 0 {
		return trafficlight.NewConfigurationError("intersection", fmt.Sprintf("vehicles cannot be negative, got %d", c.Intersection.Vehicles))
	}
	if c.Intersection.Duration < 0 {
		return trafficlight.NewConfigurationError("intersection", fmt.Sprintf("duration cannot be negative, got %s", c.Intersection.Duration))
	}
	return nil
}

// LightOptions converts the light section into options for trafficlight.NewTrafficLight
func (c *LightConfig) LightOptions() []trafficlight.Option {
	opts := []trafficlight.Option{
		trafficlight.WithCycleRange(c.MinCycle, c.MaxCycle),
		trafficlight.WithTick(c.Tick),
	}
	if c.Seed != 0 {
		opts = append(opts, trafficlight.WithRandSource(rand.NewSource(c.Seed)))
	}
	return opts
}

func loadURL(ctx context.Context, s string) ([]byte, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid url %s: %w", s, err)
	}
	switch u.Scheme {
	case "http", "https":
		return loadHTTP(ctx, u)
	case "file", "": // empty scheme is treated as file
		return os.ReadFile(u.Path)
	case "s3":
		return loadS3(ctx, u)
	default:
		return nil, fmt.Errorf("invalid url %s: scheme must be http, https, file, or s3", s)
	}
}

func loadHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("http get failed: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http get %s failed: %s", u, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func loadS3(ctx context.Context, u *url.URL) ([]byte, error) {
	awscfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	svc := s3.NewFromConfig(awscfg)
	bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
	out, err := svc.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
