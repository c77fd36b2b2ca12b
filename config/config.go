package config

import (
	"encoding/json"
	"os"

	"github.com/netchain-network/netchain-go/log"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

type Config struct {
	Epoch       uint64       `json:"epoch"`
	PoI         *PoiConfig   `json:"poi"`
	GenesisConf *GenesisConf `json:"genesis"`
}

// MakeConfig builds the node configuration: defaults, overridden by the JSON
// config file if one is given, overridden by command line flags.
func MakeConfig(ctx *cli.Context) *Config {
	cfg := getDefaultConfig()

	if file := ctx.String(CfgFileFlag.Name); file != "" {
		if err := loadConfig(file, cfg); err != nil {
			log.Error(err.Error())
		}
	}

	applyFlags(ctx, cfg)

	return cfg
}

func getDefaultConfig() *Config {
	return &Config{
		PoI: GetDefaultPoiConfig(),
		GenesisConf: &GenesisConf{
			Alloc: map[string]string{},
		},
	}
}

func loadConfig(configPath string, conf *Config) error {
	if _, err := os.Stat(configPath); err != nil {
		return errors.Errorf("config file cannot be found, path: %v", configPath)
	}

	bytes, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "cannot read config file, path: %v", configPath)
	}
	if err := json.Unmarshal(bytes, &conf); err != nil {
		return errors.Wrapf(err, "cannot parse JSON config, path: %v", configPath)
	}
	return nil
}

func applyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(VerbosityFlag.Name) {
		log.SetVerbosity(ctx.Int(VerbosityFlag.Name))
	}
	if ctx.IsSet(EpochFlag.Name) {
		cfg.Epoch = ctx.Uint64(EpochFlag.Name)
	}
}
