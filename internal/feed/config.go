//go:build !tinygo

package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. PICOLED_PORT.
const EnvPrefix = "PICOLED"

// Config controls the feeder.
type Config struct {
	Port         string        `mapstructure:"port" yaml:"port"`
	Interval     time.Duration `mapstructure:"interval" yaml:"interval"`
	IdentTimeout time.Duration `mapstructure:"ident_timeout" yaml:"ident_timeout"`
	CPUTempPath  string        `mapstructure:"cpu_temp_path" yaml:"cpu_temp_path"`
	GPUTempPath  string        `mapstructure:"gpu_temp_path" yaml:"gpu_temp_path"`
}

// Defaults match the firmware: one line per 500ms frame.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "/dev/ttyACM0")
	v.SetDefault("interval", 500*time.Millisecond)
	v.SetDefault("ident_timeout", 2*time.Second)
	v.SetDefault("cpu_temp_path", "/sys/class/thermal/thermal_zone0/temp")
	v.SetDefault("gpu_temp_path", "")
}

// NewViper returns a viper instance with defaults and env binding. If path is
// non-empty the YAML file there is read as well.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("config: port is required")
	}
	if cfg.Interval <= 0 {
		return Config{}, fmt.Errorf("config: interval must be positive, got %s", cfg.Interval)
	}
	if cfg.IdentTimeout <= 0 {
		return Config{}, fmt.Errorf("config: ident_timeout must be positive, got %s", cfg.IdentTimeout)
	}
	return cfg, nil
}
