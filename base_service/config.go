package base_service

import (
	"fmt"
	"os"
	"path/filepath"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/utils"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

var ConfigPath = "./config.toml"

var GlobalConfig *Config

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{LogLevel: int(zerolog.InfoLevel), MaxConcurrent: 3},
		Osu: Osu{
			Path:         utils.OsuHome(),
			BeatmapDB:    "osu!.db",
			CollectionDB: "collection.db",
			ScoreDB:      "scores.db",
		},
		Index: Index{Path: "osudb-index.db"},
	}
}

func LoadConfig() (Config, error) {
	if GlobalConfig == nil {
		return LoadConfigFromFile()
	}
	return *GlobalConfig, nil
}

// LoadConfigFromFile reads ConfigPath; keys missing from the file keep their defaults.
func LoadConfigFromFile() (Config, error) {
	content, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Config{}, err
	}

	config := DefaultConfig()
	err = toml.Unmarshal(content, &config)
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", ConfigPath, err)
	}
	return config, nil
}

func SaveConfig(config *Config) error {
	content, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	err = os.WriteFile(ConfigPath, content, 0644)
	if err != nil {
		return err
	}
	return nil
}

// DatabasePath resolves one of the configured database file names against the osu! directory.
func DatabasePath(config *Config, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(config.Osu.Path, name)
}
