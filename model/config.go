package model

type GeneralConfig struct {
	LogLevel      int  `toml:"log_level"`
	LogFile       bool `toml:"log_file"`
	MaxConcurrent int  `toml:"max_concurrent"`
}

type Config struct {
	General GeneralConfig
	Osu     Osu
	Index   Index
}

type Osu struct {
	// osu! installation directory; empty means the platform default
	Path         string `toml:"path"`
	BeatmapDB    string `toml:"beatmap_db"`
	CollectionDB string `toml:"collection_db"`
	ScoreDB      string `toml:"score_db"`
}

type Index struct {
	Path string `toml:"path"`
}
