package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

// EnvPrefix is prepended to names of environment variables overriding
// configuration values.
const EnvPrefix = "SBX_"

type (
	TemplateFieldName string

	NumbersConfig struct {
		Decimals int `yaml:"decimals" validate:"min=0,max=8" env:"DECIMALS"`
	}

	ExportConfig struct {
		MaxCommandCount       int           `yaml:"max_command_count" validate:"min=1" env:"MAX_COMMAND_COUNT"`
		Fragmentation         bool          `yaml:"fragmentation" env:"FRAGMENTATION"`
		Workers               int           `yaml:"workers" validate:"gte=0" env:"WORKERS"`
		OutputNameTemplate    string        `yaml:"output_name_template"`
		FileNameTransliterate bool          `yaml:"file_name_transliterate"`
		Numbers               NumbersConfig `yaml:"numbers"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Export    ExportConfig   `yaml:"export"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// checkConfig verifies relations between fields struct tags cannot express.
func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	// fragment of a single command cannot make progress
	if cfg.Export.Fragmentation && cfg.Export.MaxCommandCount < 2 {
		sl.ReportError(cfg.Export.MaxCommandCount, "MaxCommandCount", "max_command_count", "fragmentable", "2")
	}
}

func validate(cfg *Config) error {
	return gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig))
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
		}
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// applyEnvironment overrides configuration values with SBX_* environment
// variables and validates the result.
func applyEnvironment(cfg *Config) (*Config, error) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults, applies environment overrides and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if haveFile {
		// overwrite cfg values with values from the file
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg, err = unmarshalConfig(data, cfg, haveFile)
		if err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}
	return applyEnvironment(cfg)
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
