package model

import "time"

// IndexedBeatmap is the row kept for a beatmap entry in the index database.
type IndexedBeatmap struct {
	Hash             OsuString
	DifficultyId     uint32
	BeatmapId        uint32
	Artist           OsuString
	Title            OsuString
	Creator          OsuString
	Difficulty       OsuString
	RankedStatus     RankedStatus
	GameplayMode     GameplayMode
	StarRating       float64 // without mods, 0 when unknown
	FolderName       OsuString
	BeatmapFilename  OsuString
	LastModification time.Time
	DrainTime        uint32
	TotalTime        uint32
}

// IndexedScore is the row kept for a score, with its accuracy and grade precomputed.
type IndexedScore struct {
	ReplayHash    OsuString
	BeatmapHash   OsuString
	PlayerName    OsuString
	GameplayMode  GameplayMode
	Score         uint32
	MaxCombo      uint16
	Mods          Mods
	Accuracy      float64 // NaN when the score has no judgements
	Grade         Grade
	Timestamp     time.Time
	OnlineScoreId uint64
}
