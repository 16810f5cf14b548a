package osudb

import (
	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/pkg/errors"
)

const (
	minCollectionSize = 1 + 4 // absent name, empty hash list
	minHashSize       = 1
)

// DecodeCollectionListing decodes the content of collection.db.
func DecodeCollectionListing(data []byte) (*CollectionListing, error) {
	r := NewReader(data)
	listing := &CollectionListing{}
	listing.Version = r.Uint32("version")
	count := r.Count("collection_count", minCollectionSize)
	debugEvent().Uint32("version", listing.Version).Int("collections", count).Msg("Decoding collection listing")

	listing.Collections = make([]Collection, 0, count)
	for i := 0; i < count; i++ {
		collection := Collection{Name: r.String("collection.name")}
		hashes := r.Count("collection.beatmap_count", minHashSize)
		collection.BeatmapHashes = make([]OsuString, 0, hashes)
		for j := 0; j < hashes && r.Err() == nil; j++ {
			collection.BeatmapHashes = append(collection.BeatmapHashes, r.String("collection.md5"))
		}
		if r.Err() != nil {
			return nil, errors.Wrapf(r.Err(), "collection %d", i)
		}
		listing.Collections = append(listing.Collections, collection)
	}
	if err := r.Finish(); err != nil {
		return nil, errors.Wrap(err, "collection listing")
	}
	return listing, nil
}

func EncodeCollectionListing(listing *CollectionListing) ([]byte, error) {
	w := NewWriter()
	w.Uint32(listing.Version)
	w.Count("collection_count", len(listing.Collections))
	for _, collection := range listing.Collections {
		w.String(collection.Name)
		w.Count("collection.beatmap_count", len(collection.BeatmapHashes))
		for _, hash := range collection.BeatmapHashes {
			w.String(hash)
		}
	}
	if w.Err() != nil {
		return nil, errors.Wrap(w.Err(), "collection listing")
	}
	return w.Bytes(), nil
}
