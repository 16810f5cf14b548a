package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/MingxuanGame/OsuDB/base_service"
	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/osudb"
)

// OsuDirectory holds the databases of one osu! installation. A database
// whose file does not exist stays nil.
type OsuDirectory struct {
	Beatmaps    *BeatmapListing
	Collections *CollectionListing
	Scores      *ScoreListing
}

func readAndDecode[T any](path string, decode func([]byte) (*T, error)) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return result, nil
}

func LoadBeatmapListing(path string) (*BeatmapListing, error) {
	listing, err := readAndDecode(path, osudb.DecodeBeatmapListing)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", path).Uint32("version", listing.Version).Msgf("Loaded %d beatmaps", len(listing.Beatmaps))
	return listing, nil
}

func LoadCollectionListing(path string) (*CollectionListing, error) {
	listing, err := readAndDecode(path, osudb.DecodeCollectionListing)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", path).Uint32("version", listing.Version).Msgf("Loaded %d collections", len(listing.Collections))
	return listing, nil
}

func LoadScoreListing(path string) (*ScoreListing, error) {
	listing, err := readAndDecode(path, osudb.DecodeScoreListing)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("file", path).Uint32("version", listing.Version).Msgf("Loaded %d scores on %d beatmaps", listing.Count(), len(listing.BeatmapScores))
	return listing, nil
}

func LoadReplay(path string) (*ScoreReplay, error) {
	replay, err := readAndDecode(path, osudb.DecodeScoreReplay)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", path).Str("player", replay.PlayerName.Value).Msg("Loaded replay")
	return replay, nil
}

type loadTask struct {
	path string
	load func(path string) error
}

// LoadOsuDirectory decodes the databases named in config, at most
// General.MaxConcurrent at a time. Missing files are skipped with a warning.
func LoadOsuDirectory(ctx context.Context, config *Config) (*OsuDirectory, error) {
	dir := &OsuDirectory{}
	var mux sync.Mutex
	tasks := []loadTask{
		{base_service.DatabasePath(config, config.Osu.BeatmapDB), func(path string) error {
			listing, err := LoadBeatmapListing(path)
			if err == nil {
				mux.Lock()
				dir.Beatmaps = listing
				mux.Unlock()
			}
			return err
		}},
		{base_service.DatabasePath(config, config.Osu.CollectionDB), func(path string) error {
			listing, err := LoadCollectionListing(path)
			if err == nil {
				mux.Lock()
				dir.Collections = listing
				mux.Unlock()
			}
			return err
		}},
		{base_service.DatabasePath(config, config.Osu.ScoreDB), func(path string) error {
			listing, err := LoadScoreListing(path)
			if err == nil {
				mux.Lock()
				dir.Scores = listing
				mux.Unlock()
			}
			return err
		}},
	}

	sem := make(chan struct{}, max(1, config.General.MaxConcurrent))
	var wg sync.WaitGroup
	var failed []error
loop:
	for _, task := range tasks {
		if task.path == "" {
			continue
		}
		select {
		case <-ctx.Done():
			logger.Info().Msg("Context canceled, stopping task creation.")
			break loop
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(task loadTask) {
			defer wg.Done()
			defer func() { <-sem }()

			err := task.load(task.path)
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn().Str("file", task.path).Msg("Database not found, skipped")
				return
			}
			if err != nil {
				mux.Lock()
				failed = append(failed, err)
				mux.Unlock()
			}
		}(task)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(failed) > 0 {
		return nil, errors.Join(failed...)
	}
	return dir, nil
}
