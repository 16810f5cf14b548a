package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MingxuanGame/OsuDB/base_service"
	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/osudb"
	"github.com/MingxuanGame/OsuDB/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const beatmapHash = "da8aae79c8f3306b5d65ec951874a7fb"

func writeFile(t *testing.T, path string, data []byte, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func testScore() ScoreReplay {
	return ScoreReplay{
		BeatmapHash: Some(beatmapHash),
		PlayerName:  Some("peppy"),
		ReplayHash:  Some("0f3c2ab1a1b2c3d4e5f60718293a4b5c"),
		Hits300:     100,
		Score:       1000000,
		Mods:        ModHidden,
		Timestamp:   time.Date(2023, time.July, 28, 15, 30, 20, 0, time.UTC),
		ReplayData:  []byte{1, 2, 3},
	}
}

// osuDirectory writes a small osu! directory and returns a config pointing at it.
func osuDirectory(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	config := base_service.DefaultConfig()
	config.Osu.Path = dir
	config.Index.Path = filepath.Join(dir, "index.db")

	data, err := osudb.EncodeBeatmapListing(&BeatmapListing{
		Version:    20211208,
		PlayerName: Some("peppy"),
		Beatmaps: []BeatmapEntry{{
			Hash:         Some(beatmapHash),
			Title:        Some("FREEDOM DiVE"),
			RankedStatus: StatusRanked,
		}},
	})
	writeFile(t, filepath.Join(dir, config.Osu.BeatmapDB), data, err)

	data, err = osudb.EncodeCollectionListing(&CollectionListing{
		Version:     20211208,
		Collections: []Collection{{Name: Some("farm"), BeatmapHashes: []OsuString{Some(beatmapHash)}}},
	})
	writeFile(t, filepath.Join(dir, config.Osu.CollectionDB), data, err)

	score := testScore()
	data, err = osudb.EncodeScoreListing(&ScoreListing{
		Version:       20211208,
		BeatmapScores: []BeatmapScores{{BeatmapHash: Some(beatmapHash), Scores: []ScoreReplay{score}}},
	})
	writeFile(t, filepath.Join(dir, config.Osu.ScoreDB), data, err)
	return &config
}

func TestLoadOsuDirectory(t *testing.T) {
	config := osuDirectory(t)
	dir, err := LoadOsuDirectory(context.Background(), config)
	require.NoError(t, err)
	require.NotNil(t, dir.Beatmaps)
	require.NotNil(t, dir.Collections)
	require.NotNil(t, dir.Scores)
	assert.NotNil(t, dir.Beatmaps.FindByHash(beatmapHash))
	assert.Equal(t, 1, dir.Scores.Count())
}

func TestLoadOsuDirectorySkipsMissingFiles(t *testing.T) {
	config := osuDirectory(t)
	require.NoError(t, os.Remove(base_service.DatabasePath(config, config.Osu.CollectionDB)))
	config.Osu.ScoreDB = ""

	dir, err := LoadOsuDirectory(context.Background(), config)
	require.NoError(t, err)
	assert.NotNil(t, dir.Beatmaps)
	assert.Nil(t, dir.Collections)
	assert.Nil(t, dir.Scores)
}

func TestLoadOsuDirectoryReportsCorruptFiles(t *testing.T) {
	config := osuDirectory(t)
	path := base_service.DatabasePath(config, config.Osu.ScoreDB)
	require.NoError(t, os.WriteFile(path, []byte{1, 2}, 0644))

	_, err := LoadOsuDirectory(context.Background(), config)
	require.Error(t, err)
	assert.ErrorIs(t, err, osudb.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), path)
}

func TestLoadOsuDirectoryCanceled(t *testing.T) {
	config := osuDirectory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadOsuDirectory(ctx, config)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildIndex(t *testing.T) {
	config := osuDirectory(t)
	summary, err := BuildIndex(context.Background(), config)
	require.NoError(t, err)
	assert.Equal(t, IndexSummary{Beatmaps: 1, Collections: 1, Scores: 1}, summary)

	db, err := sql.OpenDatabase(config.Index.Path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	beatmap, err := db.ReadBeatmap(beatmapHash)
	require.NoError(t, err)
	require.NotNil(t, beatmap)
	assert.Equal(t, Some("FREEDOM DiVE"), beatmap.Title)

	hashes, err := db.ReadCollection("farm")
	require.NoError(t, err)
	assert.Equal(t, []string{beatmapHash}, hashes)

	scores, err := db.ReadScores(beatmapHash)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, GradeSilverSS, scores[0].Grade)

	// building twice starts from an empty index
	_, err = BuildIndex(context.Background(), config)
	require.NoError(t, err)
	scores, err = db.ReadScores(beatmapHash)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestLoadReplay(t *testing.T) {
	score := testScore()
	path := filepath.Join(t.TempDir(), "replay.osr")
	data, err := osudb.EncodeScoreReplay(&score)
	writeFile(t, path, data, err)

	replay, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, score.PlayerName, replay.PlayerName)
	assert.Equal(t, score.ReplayData, replay.ReplayData)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.osr"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
