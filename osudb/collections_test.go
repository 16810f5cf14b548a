package osudb

import (
	"encoding/binary"
	"testing"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionListingRoundTrip(t *testing.T) {
	listing := &CollectionListing{
		Version: 20230728,
		Collections: []Collection{
			{Name: Some("farm"), BeatmapHashes: []OsuString{Some("da8aae79c8f3306b5d65ec951874a7fb"), Some("1c4ea4e1b8d1e5c1f0a1b2c3d4e5f607")}},
			{Name: Some(""), BeatmapHashes: []OsuString{}},
			{Name: None(), BeatmapHashes: []OsuString{None()}},
		},
	}
	data, err := EncodeCollectionListing(listing)
	require.NoError(t, err)

	decoded, err := DecodeCollectionListing(data)
	require.NoError(t, err)
	assert.Equal(t, listing, decoded)
	assert.NotNil(t, decoded.Find("farm"))
	assert.Nil(t, decoded.Find("missing"))
}

func TestCollectionListingBytes(t *testing.T) {
	data := binary.LittleEndian.AppendUint32(nil, 20150203)
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = append(data, 0x0b, 0x02, 'h', 'd')
	data = binary.LittleEndian.AppendUint32(data, 1)
	data = append(data, 0x0b, 0x03, 'a', 'b', 'c')

	decoded, err := DecodeCollectionListing(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(20150203), decoded.Version)
	require.Len(t, decoded.Collections, 1)
	assert.Equal(t, Some("hd"), decoded.Collections[0].Name)
	assert.Equal(t, []OsuString{Some("abc")}, decoded.Collections[0].BeatmapHashes)

	again, err := EncodeCollectionListing(decoded)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestCollectionListingErrors(t *testing.T) {
	t.Run("forged collection count", func(t *testing.T) {
		data := binary.LittleEndian.AppendUint32(nil, 1)
		data = binary.LittleEndian.AppendUint32(data, 0x7FFFFFFF)
		_, err := DecodeCollectionListing(data)
		requireDecodeError(t, err, MalformedPrimitive, 4)
	})

	t.Run("forged hash count", func(t *testing.T) {
		data := binary.LittleEndian.AppendUint32(nil, 1)
		data = binary.LittleEndian.AppendUint32(data, 1)
		data = append(data, 0x00)
		data = binary.LittleEndian.AppendUint32(data, 1000)
		_, err := DecodeCollectionListing(data)
		requireDecodeError(t, err, MalformedPrimitive, 9)
		assert.Contains(t, err.Error(), "collection 0")
	})

	t.Run("trailing data", func(t *testing.T) {
		data := binary.LittleEndian.AppendUint32(nil, 1)
		data = binary.LittleEndian.AppendUint32(data, 0)
		_, err := DecodeCollectionListing(append(data, 0xAA))
		assert.ErrorIs(t, err, ErrTrailingData)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := DecodeCollectionListing(nil)
		assert.ErrorIs(t, err, ErrUnexpectedEOF)
	})
}
