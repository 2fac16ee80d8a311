package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/batterycf/core/factory"
	"github.com/kilianp07/batterycf/core/metrics"
	"github.com/kilianp07/batterycf/core/model"
	"github.com/kilianp07/batterycf/infra/mqtt"
)

// EnvPrefix marks environment variables that override file values.
// K_MODEL__LIFETIME=20 sets model.lifetime and K_MODEL__NUMBERBATTERIES=5
// sets model.numberBatteries.
const EnvPrefix = "K_"

type Config struct {
	Plugin  factory.ModuleConfig `json:"plugin"`
	Model   model.Parameters     `json:"-"`
	Logging LoggingConfig        `json:"logging"`
	Metrics metrics.Config       `json:"metrics"`
	MQTT    mqtt.Config          `json:"mqtt"`
	Export  ExportConfig         `json:"export"`
	// Warnings lists ignored model keys.
	Warnings []string `json:"-"`
}

// Load reads the file at path, applies environment overrides and validates
// every section. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return canonicalKey(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	params, warnings, err := model.DecodeParameters(k.Cut("model").Raw())
	if err != nil {
		return nil, err
	}
	cfg.Model = params
	cfg.Warnings = warnings

	cfg.Logging.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Export.SetDefaults()
	if err := errors.Join(cfg.Logging.Validate(), cfg.MQTT.Validate(), cfg.Export.Validate()); err != nil {
		return nil, err
	}
	return &cfg, nil
}
