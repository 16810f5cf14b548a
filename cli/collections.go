package cli

import (
	"fmt"
	"io"

	"github.com/MingxuanGame/OsuDB/application"
)

// ShowCollections lists every collection. Beatmap names are resolved from
// beatmapsPath when it can be loaded.
func ShowCollections(w io.Writer, path string, beatmapsPath string) error {
	listing, err := application.LoadCollectionListing(path)
	if err != nil {
		return err
	}

	names := make(map[string]string)
	if beatmapsPath != "" {
		beatmaps, err := application.LoadBeatmapListing(beatmapsPath)
		if err != nil {
			logger.Warn().Err(err).Msg("Cannot resolve beatmap names")
		} else {
			for i := range beatmaps.Beatmaps {
				b := &beatmaps.Beatmaps[i]
				names[b.Hash.Value] = b.DisplayName()
			}
		}
	}

	for _, c := range listing.Collections {
		_, _ = fmt.Fprintf(w, "%s (%d)\n", c.Name.Or("<unnamed>"), len(c.BeatmapHashes))
		for _, hash := range c.BeatmapHashes {
			name, ok := names[hash.Value]
			if !ok {
				name = "unknown beatmap"
			}
			_, _ = fmt.Fprintf(w, "  %-32s  %s\n", hash.Value, name)
		}
	}
	return nil
}
