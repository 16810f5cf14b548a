package cli

import (
	"fmt"
	"os"

	"github.com/MingxuanGame/OsuDB/base_service"
	. "github.com/MingxuanGame/OsuDB/model"
)

var logger = base_service.GetLogger("cli")

func GenerateConfig() error {
	_, err := os.Stat(base_service.ConfigPath)
	if err == nil {
		return fmt.Errorf("config file already exists")
	}
	config := base_service.DefaultConfig()
	err = base_service.SaveConfig(&config)
	if err != nil {
		return err
	}
	logger.Debug().Str("osu", config.Osu.Path).Msg("Wrote default config")
	return nil
}

// LoadConfig returns the config, with the osu! directory overridden when dir is set.
func LoadConfig(dir string) (*Config, error) {
	config, err := base_service.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dir != "" {
		config.Osu.Path = dir
	}
	return &config, nil
}

// ResolvePath picks the file given on the command line, or the configured database.
func ResolvePath(arg string, config *Config, name string) string {
	if arg != "" {
		return arg
	}
	return base_service.DatabasePath(config, name)
}
