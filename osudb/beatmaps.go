package osudb

import (
	"math"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/pkg/errors"
)

const (
	starRatingIntMarker    = 0x08
	starRatingDoubleMarker = 0x0d

	// smallest possible entry: every string absent, byte-wide difficulty
	// stats, every array empty
	minBeatmapEntrySize = 124
	minStarRatingSize   = 1 + 4 + 1 + 8
	minTimingPointSize  = 8 + 8 + 1
)

// beatmapLayout holds the version gates of one listing, resolved once.
type beatmapLayout struct {
	hasEntrySize    bool
	hasUnusedSingle bool
	difficultyWidth string
	readDifficulty  func(r *Reader, field string) float32
	writeDifficulty func(w *Writer, v float32)
}

func newBeatmapLayout(version uint32) beatmapLayout {
	l := beatmapLayout{
		hasEntrySize:    version < VersionNoEntrySize,
		hasUnusedSingle: version < VersionFloatDifficulty,
	}
	if version >= VersionFloatDifficulty {
		l.difficultyWidth = "float32"
		l.readDifficulty = func(r *Reader, field string) float32 { return r.Float32(field) }
		l.writeDifficulty = func(w *Writer, v float32) { w.Float32(v) }
	} else {
		l.difficultyWidth = "byte"
		l.readDifficulty = func(r *Reader, field string) float32 { return float32(r.Byte(field)) }
		l.writeDifficulty = func(w *Writer, v float32) { w.Byte(difficultyByte(v)) }
	}
	return l
}

func difficultyByte(v float32) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(math.Round(float64(v)))
}

// DecodeBeatmapListing decodes the content of osu!.db.
func DecodeBeatmapListing(data []byte) (*BeatmapListing, error) {
	r := NewReader(data)
	listing := &BeatmapListing{}
	listing.Version = r.Uint32("version")
	listing.FolderCount = r.Uint32("folder_count")
	listing.AccountUnlocked = r.Bool("account_unlocked")
	listing.AccountUnlockDate = r.DateTime("account_unlock_date")
	listing.PlayerName = r.String("player_name")
	if r.Err() != nil {
		return nil, errors.Wrap(r.Err(), "beatmap listing header")
	}

	layout := newBeatmapLayout(listing.Version)
	count := r.Count("beatmap_count", minBeatmapEntrySize)
	debugEvent().Uint32("version", listing.Version).Int("beatmaps", count).
		Str("difficulty", layout.difficultyWidth).Msg("Decoding beatmap listing")

	listing.Beatmaps = make([]BeatmapEntry, 0, count)
	for i := 0; i < count; i++ {
		entry := decodeBeatmapEntry(r, layout)
		if r.Err() != nil {
			return nil, errors.Wrapf(r.Err(), "beatmap entry %d", i)
		}
		listing.Beatmaps = append(listing.Beatmaps, entry)
	}
	listing.UserPermissions = r.Uint32("user_permissions")
	if err := r.Finish(); err != nil {
		return nil, errors.Wrap(err, "beatmap listing")
	}
	return listing, nil
}

func decodeBeatmapEntry(r *Reader, layout beatmapLayout) BeatmapEntry {
	var b BeatmapEntry
	if layout.hasEntrySize {
		size := r.Uint32("size")
		b.Size = &size
	}
	b.Artist = r.String("artist")
	b.ArtistUnicode = r.String("artist_unicode")
	b.Title = r.String("title")
	b.TitleUnicode = r.String("title_unicode")
	b.Creator = r.String("creator")
	b.Difficulty = r.String("difficulty")
	b.AudioFilename = r.String("audio_filename")
	b.Hash = r.String("md5")
	b.BeatmapFilename = r.String("beatmap_filename")
	b.RankedStatus = r.RankedStatus("ranked_status")
	b.HitCircleCount = r.Uint16("hitcircle_count")
	b.SliderCount = r.Uint16("slider_count")
	b.SpinnerCount = r.Uint16("spinner_count")
	b.LastModification = r.DateTime("last_modification_time")
	b.ApproachRate = layout.readDifficulty(r, "approach_rate")
	b.CircleSize = layout.readDifficulty(r, "circle_size")
	b.HPDrain = layout.readDifficulty(r, "hp_drain")
	b.OverallDifficulty = layout.readDifficulty(r, "overall_difficulty")
	b.SliderVelocity = r.Float64("slider_velocity")
	b.StarRatingsStandard = decodeStarRatings(r, "star_ratings_standard")
	b.StarRatingsTaiko = decodeStarRatings(r, "star_ratings_taiko")
	b.StarRatingsCatch = decodeStarRatings(r, "star_ratings_catch")
	b.StarRatingsMania = decodeStarRatings(r, "star_ratings_mania")
	b.DrainTime = r.Uint32("drain_time")
	b.TotalTime = r.Uint32("total_time")
	b.AudioPreviewTime = r.Uint32("audio_preview_time")
	b.TimingPoints = decodeTimingPoints(r)
	b.DifficultyId = r.Uint32("difficulty_id")
	b.BeatmapId = r.Uint32("beatmap_id")
	b.ThreadId = r.Uint32("thread_id")
	b.GradeStandard = r.Byte("grade_standard")
	b.GradeTaiko = r.Byte("grade_taiko")
	b.GradeCatch = r.Byte("grade_catch")
	b.GradeMania = r.Byte("grade_mania")
	b.LocalOffset = r.Uint16("local_offset")
	b.StackLeniency = r.Float32("stack_leniency")
	b.GameplayMode = r.GameplayMode("gameplay_mode")
	b.SongSource = r.String("song_source")
	b.SongTags = r.String("song_tags")
	b.OnlineOffset = r.Uint16("online_offset")
	b.TitleFont = r.String("title_font")
	b.IsUnplayed = r.Bool("is_unplayed")
	b.LastPlayed = r.DateTime("last_played")
	b.IsOsz2 = r.Bool("is_osz2")
	b.FolderName = r.String("folder_name")
	b.LastCheckedOnline = r.DateTime("last_checked_online")
	b.IgnoreBeatmapHitsounds = r.Bool("ignore_beatmap_hitsounds")
	b.IgnoreBeatmapSkin = r.Bool("ignore_beatmap_skin")
	b.DisableStoryboard = r.Bool("disable_storyboard")
	b.DisableVideo = r.Bool("disable_video")
	if layout.hasUnusedSingle {
		b.UnusedSingle = r.Float32("unused_single")
	}
	b.UnusedInt = r.Uint32("unused_int")
	b.ManiaScrollSpeed = r.Byte("mania_scroll_speed")
	return b
}

// decodeStarRatings reads pairs tagged as 0x08 <u32 mods> 0x0d <f64 rating>.
func decodeStarRatings(r *Reader, field string) []StarRating {
	count := r.Count(field, minStarRatingSize)
	ratings := make([]StarRating, 0, count)
	for i := 0; i < count && r.Err() == nil; i++ {
		r.Expect("star_rating.mods_marker", starRatingIntMarker)
		mods := r.Mods("star_rating.mods")
		r.Expect("star_rating.rating_marker", starRatingDoubleMarker)
		rating := r.Float64("star_rating.rating")
		ratings = append(ratings, StarRating{Mods: mods, Rating: rating})
	}
	return ratings
}

func decodeTimingPoints(r *Reader) []TimingPoint {
	count := r.Count("timing_points", minTimingPointSize)
	points := make([]TimingPoint, 0, count)
	for i := 0; i < count && r.Err() == nil; i++ {
		points = append(points, TimingPoint{
			BPM:        r.Float64("timing_point.bpm"),
			SongOffset: r.Float64("timing_point.offset"),
			Inherited:  r.Bool("timing_point.inherited"),
		})
	}
	return points
}

// EncodeBeatmapListing writes listing in the layout selected by its Version.
// An entry without Size gets its byte length computed when the version needs one.
func EncodeBeatmapListing(listing *BeatmapListing) ([]byte, error) {
	w := NewWriter()
	w.Uint32(listing.Version)
	w.Uint32(listing.FolderCount)
	w.Bool(listing.AccountUnlocked)
	w.DateTime("account_unlock_date", listing.AccountUnlockDate)
	w.String(listing.PlayerName)
	w.Count("beatmap_count", len(listing.Beatmaps))

	layout := newBeatmapLayout(listing.Version)
	for i := range listing.Beatmaps {
		entry := NewWriter()
		encodeBeatmapEntry(entry, &listing.Beatmaps[i], layout)
		if entry.Err() != nil {
			return nil, errors.Wrapf(entry.Err(), "beatmap entry %d", i)
		}
		if layout.hasEntrySize {
			if size := listing.Beatmaps[i].Size; size != nil {
				w.Uint32(*size)
			} else {
				w.Uint32(uint32(entry.Len()))
			}
		}
		w.Raw(entry.Bytes())
	}
	w.Uint32(listing.UserPermissions)
	if w.Err() != nil {
		return nil, errors.Wrap(w.Err(), "beatmap listing")
	}
	return w.Bytes(), nil
}

// encodeBeatmapEntry writes everything after the size field.
func encodeBeatmapEntry(w *Writer, b *BeatmapEntry, layout beatmapLayout) {
	w.String(b.Artist)
	w.String(b.ArtistUnicode)
	w.String(b.Title)
	w.String(b.TitleUnicode)
	w.String(b.Creator)
	w.String(b.Difficulty)
	w.String(b.AudioFilename)
	w.String(b.Hash)
	w.String(b.BeatmapFilename)
	w.RankedStatus("ranked_status", b.RankedStatus)
	w.Uint16(b.HitCircleCount)
	w.Uint16(b.SliderCount)
	w.Uint16(b.SpinnerCount)
	w.DateTime("last_modification_time", b.LastModification)
	layout.writeDifficulty(w, b.ApproachRate)
	layout.writeDifficulty(w, b.CircleSize)
	layout.writeDifficulty(w, b.HPDrain)
	layout.writeDifficulty(w, b.OverallDifficulty)
	w.Float64(b.SliderVelocity)
	encodeStarRatings(w, "star_ratings_standard", b.StarRatingsStandard)
	encodeStarRatings(w, "star_ratings_taiko", b.StarRatingsTaiko)
	encodeStarRatings(w, "star_ratings_catch", b.StarRatingsCatch)
	encodeStarRatings(w, "star_ratings_mania", b.StarRatingsMania)
	w.Uint32(b.DrainTime)
	w.Uint32(b.TotalTime)
	w.Uint32(b.AudioPreviewTime)
	w.Count("timing_points", len(b.TimingPoints))
	for _, p := range b.TimingPoints {
		w.Float64(p.BPM)
		w.Float64(p.SongOffset)
		w.Bool(p.Inherited)
	}
	w.Uint32(b.DifficultyId)
	w.Uint32(b.BeatmapId)
	w.Uint32(b.ThreadId)
	w.Byte(b.GradeStandard)
	w.Byte(b.GradeTaiko)
	w.Byte(b.GradeCatch)
	w.Byte(b.GradeMania)
	w.Uint16(b.LocalOffset)
	w.Float32(b.StackLeniency)
	w.GameplayMode("gameplay_mode", b.GameplayMode)
	w.String(b.SongSource)
	w.String(b.SongTags)
	w.Uint16(b.OnlineOffset)
	w.String(b.TitleFont)
	w.Bool(b.IsUnplayed)
	w.DateTime("last_played", b.LastPlayed)
	w.Bool(b.IsOsz2)
	w.String(b.FolderName)
	w.DateTime("last_checked_online", b.LastCheckedOnline)
	w.Bool(b.IgnoreBeatmapHitsounds)
	w.Bool(b.IgnoreBeatmapSkin)
	w.Bool(b.DisableStoryboard)
	w.Bool(b.DisableVideo)
	if layout.hasUnusedSingle {
		w.Float32(b.UnusedSingle)
	}
	w.Uint32(b.UnusedInt)
	w.Byte(b.ManiaScrollSpeed)
}

func encodeStarRatings(w *Writer, field string, ratings []StarRating) {
	w.Count(field, len(ratings))
	for _, rating := range ratings {
		w.Byte(starRatingIntMarker)
		w.Mods(rating.Mods)
		w.Byte(starRatingDoubleMarker)
		w.Float64(rating.Rating)
	}
}
