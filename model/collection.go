package model

// CollectionListing is the content of collection.db.
type CollectionListing struct {
	Version     uint32
	Collections []Collection
}

// Collection groups beatmaps by MD5 hash; it does not own the entries.
type Collection struct {
	Name          OsuString
	BeatmapHashes []OsuString
}

func (l *CollectionListing) Find(name string) *Collection {
	for i := range l.Collections {
		if l.Collections[i].Name.Value == name {
			return &l.Collections[i]
		}
	}
	return nil
}
