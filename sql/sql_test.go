package sql

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.DropAll())
	return db
}

func TestBeatmapIndex(t *testing.T) {
	db := openTestDatabase(t)
	modified := time.Date(2014, time.March, 1, 12, 0, 0, 0, time.UTC)
	listing := &BeatmapListing{Beatmaps: []BeatmapEntry{
		{
			Hash:                Some("da8aae79c8f3306b5d65ec951874a7fb"),
			Artist:              Some("xi"),
			Title:               Some("FREEDOM DiVE"),
			Creator:             Some("Nakagawa-Kanon"),
			Difficulty:          Some("FOUR DIMENSIONS"),
			TitleUnicode:        None(),
			RankedStatus:        StatusRanked,
			GameplayMode:        ModeStandard,
			DifficultyId:        129891,
			BeatmapId:           39804,
			StarRatingsStandard: []StarRating{{Mods: ModHardRock, Rating: 8.1}, {Mods: ModNone, Rating: 7.07}},
			LastModification:    modified,
			DrainTime:           257,
			TotalTime:           263000,
		},
		{Title: Some("no hash")},
	}}
	require.NoError(t, db.WriteBeatmapListing(listing))

	b, err := db.ReadBeatmap("da8aae79c8f3306b5d65ec951874a7fb")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, Some("FREEDOM DiVE"), b.Title)
	assert.Equal(t, None(), b.FolderName)
	assert.Equal(t, StatusRanked, b.RankedStatus)
	assert.Equal(t, uint32(129891), b.DifficultyId)
	assert.Equal(t, 7.07, b.StarRating)
	assert.True(t, modified.Equal(b.LastModification))

	missing, err := db.ReadBeatmap("ffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// writing again replaces the row
	listing.Beatmaps[0].RankedStatus = StatusLoved
	require.NoError(t, db.WriteBeatmapListing(listing))
	b, err = db.ReadBeatmap("da8aae79c8f3306b5d65ec951874a7fb")
	require.NoError(t, err)
	assert.Equal(t, StatusLoved, b.RankedStatus)
}

func TestCollectionIndex(t *testing.T) {
	db := openTestDatabase(t)
	listing := &CollectionListing{Collections: []Collection{
		{Name: Some("farm"), BeatmapHashes: []OsuString{Some("c"), Some("a"), None(), Some("b")}},
		{Name: Some("tech"), BeatmapHashes: []OsuString{Some("a")}},
	}}
	require.NoError(t, db.WriteCollectionListing(listing))

	hashes, err := db.ReadCollection("farm")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, hashes)

	hashes, err = db.ReadCollection("missing")
	require.NoError(t, err)
	assert.Empty(t, hashes)
}

func TestCollectionIndexKeepsDuplicates(t *testing.T) {
	db := openTestDatabase(t)
	listing := &CollectionListing{Collections: []Collection{
		{Name: Some("fav"), BeatmapHashes: []OsuString{Some("a"), Some("b"), Some("a")}},
		{Name: None(), BeatmapHashes: []OsuString{Some("x")}},
		{Name: Some("fav"), BeatmapHashes: []OsuString{Some("c")}},
		{Name: Some(""), BeatmapHashes: []OsuString{Some("y")}},
	}}
	require.NoError(t, db.WriteCollectionListing(listing))

	hashes, err := db.ReadCollection("fav")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a", "c"}, hashes)

	hashes, err = db.ReadCollection("")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, hashes)
}

func TestScoreIndex(t *testing.T) {
	db := openTestDatabase(t)
	played := time.Date(2023, time.July, 28, 15, 30, 20, 0, time.UTC)
	listing := &ScoreListing{BeatmapScores: []BeatmapScores{{
		BeatmapHash: Some("da8aae79c8f3306b5d65ec951874a7fb"),
		Scores: []ScoreReplay{
			{ReplayHash: Some("r1"), PlayerName: Some("peppy"), Hits300: 90, Hits100: 10, Score: 1000, Timestamp: played},
			{ReplayHash: Some("r2"), PlayerName: Some("Cookiezi"), Hits300: 100, Mods: ModHidden, Score: 5000, Timestamp: played, OnlineScoreId: 42},
			{ReplayHash: None(), PlayerName: Some("nobody"), Score: 10},
			{ReplayHash: None(), PlayerName: Some("nobody"), Score: 5},
		},
	}}}
	require.NoError(t, db.WriteScoreListing(listing))

	scores, err := db.ReadScores("da8aae79c8f3306b5d65ec951874a7fb")
	require.NoError(t, err)
	require.Len(t, scores, 4)

	best := scores[0]
	assert.Equal(t, Some("Cookiezi"), best.PlayerName)
	assert.Equal(t, GradeSilverSS, best.Grade)
	assert.Equal(t, 100.0, best.Accuracy)
	assert.Equal(t, ModHidden, best.Mods)
	assert.Equal(t, uint64(42), best.OnlineScoreId)
	assert.True(t, played.Equal(best.Timestamp))

	assert.Equal(t, GradeS, scores[1].Grade)
	assert.InDelta(t, 93.333333, scores[1].Accuracy, 1e-5)

	assert.Equal(t, None(), scores[2].ReplayHash)
	assert.True(t, math.IsNaN(scores[2].Accuracy))

	none, err := db.ReadScores("other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDropAll(t *testing.T) {
	db := openTestDatabase(t)
	require.NoError(t, db.WriteCollectionListing(&CollectionListing{Collections: []Collection{
		{Name: Some("farm"), BeatmapHashes: []OsuString{Some("a")}},
	}}))
	require.NoError(t, db.DropAll())
	hashes, err := db.ReadCollection("farm")
	require.NoError(t, err)
	assert.Empty(t, hashes)
}
