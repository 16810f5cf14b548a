package model

import "time"

// Listing versions that change the layout of osu!.db entries.
const (
	VersionFloatDifficulty = 20140609 // difficulty stats become float32, filler float32 dropped
	VersionNoEntrySize     = 20191106 // per-entry size prefix dropped
)

// BeatmapListing is the content of osu!.db.
type BeatmapListing struct {
	Version           uint32
	FolderCount       uint32
	AccountUnlocked   bool
	AccountUnlockDate time.Time
	PlayerName        OsuString
	Beatmaps          []BeatmapEntry
	UserPermissions   uint32
}

// FindByHash returns the entry with the given MD5 hash, or nil.
func (l *BeatmapListing) FindByHash(hash string) *BeatmapEntry {
	for i := range l.Beatmaps {
		if l.Beatmaps[i].Hash.Present && l.Beatmaps[i].Hash.Value == hash {
			return &l.Beatmaps[i]
		}
	}
	return nil
}

// HashIndex maps MD5 hash to entry position; entries without a hash are skipped.
func (l *BeatmapListing) HashIndex() map[string]int {
	index := make(map[string]int, len(l.Beatmaps))
	for i, b := range l.Beatmaps {
		if b.Hash.Present {
			index[b.Hash.Value] = i
		}
	}
	return index
}

type BeatmapEntry struct {
	// Size of the entry in bytes; nil when the listing version has no size field.
	Size *uint32

	Artist           OsuString
	ArtistUnicode    OsuString
	Title            OsuString
	TitleUnicode     OsuString
	Creator          OsuString
	Difficulty       OsuString
	AudioFilename    OsuString
	Hash             OsuString
	BeatmapFilename  OsuString
	RankedStatus     RankedStatus
	HitCircleCount   uint16
	SliderCount      uint16
	SpinnerCount     uint16
	LastModification time.Time

	ApproachRate      float32
	CircleSize        float32
	HPDrain           float32
	OverallDifficulty float32
	SliderVelocity    float64

	StarRatingsStandard []StarRating
	StarRatingsTaiko    []StarRating
	StarRatingsCatch    []StarRating
	StarRatingsMania    []StarRating

	DrainTime        uint32 // seconds
	TotalTime        uint32 // milliseconds
	AudioPreviewTime uint32 // milliseconds
	TimingPoints     []TimingPoint

	DifficultyId uint32
	BeatmapId    uint32
	ThreadId     uint32

	GradeStandard uint8
	GradeTaiko    uint8
	GradeCatch    uint8
	GradeMania    uint8

	LocalOffset       uint16
	StackLeniency     float32
	GameplayMode      GameplayMode
	SongSource        OsuString
	SongTags          OsuString
	OnlineOffset      uint16
	TitleFont         OsuString
	IsUnplayed        bool
	LastPlayed        time.Time
	IsOsz2            bool
	FolderName        OsuString
	LastCheckedOnline time.Time

	IgnoreBeatmapHitsounds bool
	IgnoreBeatmapSkin      bool
	DisableStoryboard      bool
	DisableVideo           bool

	// Opaque filler values, kept only so an entry re-encodes byte for byte.
	UnusedSingle float32
	UnusedInt    uint32

	ManiaScrollSpeed uint8
}

func (b *BeatmapEntry) StarRatings(mode GameplayMode) []StarRating {
	switch mode {
	case ModeStandard:
		return b.StarRatingsStandard
	case ModeTaiko:
		return b.StarRatingsTaiko
	case ModeCatch:
		return b.StarRatingsCatch
	case ModeMania:
		return b.StarRatingsMania
	}
	return nil
}

// NoModStarRating returns the rating without modifiers for the entry's own mode.
func (b *BeatmapEntry) NoModStarRating() (float64, bool) {
	for _, r := range b.StarRatings(b.GameplayMode) {
		if r.Mods == ModNone {
			return r.Rating, true
		}
	}
	return 0, false
}

// DisplayName formats the entry like the song select does: "Artist - Title [Difficulty]".
func (b *BeatmapEntry) DisplayName() string {
	return b.Artist.Or("Unknown") + " - " + b.Title.Or("Unknown") + " [" + b.Difficulty.Or("?") + "]"
}

type TimingPoint struct {
	BPM        float64
	SongOffset float64
	Inherited  bool
}

type StarRating struct {
	Mods   Mods
	Rating float64
}
