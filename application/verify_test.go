package application

import (
	"testing"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/osudb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	score := testScore()
	data, err := osudb.EncodeScoreReplay(&score)
	require.NoError(t, err)

	result, err := VerifyRoundTrip(KindReplay, data)
	require.NoError(t, err)
	assert.True(t, result.Match)
	assert.Equal(t, -1, result.FirstDifference)
	assert.Equal(t, len(data), result.EncodedSize)

	// a perfect combo flag of 2 reads as true and is written back as 1
	empty, err := osudb.EncodeScoreReplay(&ScoreReplay{})
	require.NoError(t, err)
	perfectAt := 1 + 4 + 3 + 12 + 4 + 2
	empty[perfectAt] = 2
	result, err = VerifyRoundTrip(KindReplay, empty)
	require.NoError(t, err)
	assert.False(t, result.Match)
	assert.Equal(t, perfectAt, result.FirstDifference)

	_, err = VerifyRoundTrip(KindCollectionListing, []byte{1})
	assert.ErrorIs(t, err, osudb.ErrUnexpectedEOF)
}

func TestVerifyPaddedUleb128(t *testing.T) {
	// one collection named "a" whose name length is written as 0x81 0x00
	data := []byte{0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x0b, 0x81, 0x00, 'a', 0x00, 0x00, 0x00, 0x00}
	result, err := VerifyRoundTrip(KindCollectionListing, data)
	require.NoError(t, err)
	assert.False(t, result.Match)
	assert.Equal(t, 9, result.FirstDifference)
	assert.Equal(t, len(data)-1, result.EncodedSize)
}

func TestFileKind(t *testing.T) {
	for path, want := range map[string]FileKind{
		"/games/osu!/osu!.db":        KindBeatmapListing,
		"collection.db":              KindCollectionListing,
		"C:/osu!/Scores.db":          KindScoreListing,
		"replays/peppy - xi (1).osr": KindReplay,
	} {
		kind, err := DetectFileKind(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, kind, path)
	}
	_, err := DetectFileKind("notes.txt")
	assert.Error(t, err)

	kind, err := ParseFileKind("Scores")
	require.NoError(t, err)
	assert.Equal(t, KindScoreListing, kind)
	assert.Equal(t, "scores", kind.String())
	_, err = ParseFileKind("skins")
	assert.Error(t, err)
}

func TestFirstDifference(t *testing.T) {
	assert.Equal(t, -1, firstDifference([]byte{1, 2}, []byte{1, 2}))
	assert.Equal(t, 1, firstDifference([]byte{1, 2}, []byte{1, 3}))
	assert.Equal(t, 2, firstDifference([]byte{1, 2}, []byte{1, 2, 3}))
	assert.Equal(t, 0, firstDifference(nil, []byte{1}))
}
