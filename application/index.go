package application

import (
	"context"
	"fmt"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/sql"
)

type IndexSummary struct {
	Beatmaps    int
	Collections int
	Scores      int
}

// BuildIndex loads the osu! directory and rewrites the index database at
// config.Index.Path from scratch.
func BuildIndex(ctx context.Context, config *Config) (IndexSummary, error) {
	dir, err := LoadOsuDirectory(ctx, config)
	if err != nil {
		return IndexSummary{}, err
	}
	db, err := sql.OpenDatabase(config.Index.Path)
	if err != nil {
		return IndexSummary{}, err
	}
	defer func(db *sql.Database) {
		err := db.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to close index database")
		}
	}(db)
	return WriteIndex(ctx, db, dir)
}

func WriteIndex(ctx context.Context, db *sql.Database, dir *OsuDirectory) (IndexSummary, error) {
	var summary IndexSummary
	if err := db.DropAll(); err != nil {
		return summary, fmt.Errorf("create index tables: %w", err)
	}

	if dir.Beatmaps != nil {
		if err := db.WriteBeatmapListing(dir.Beatmaps); err != nil {
			return summary, fmt.Errorf("index beatmaps: %w", err)
		}
		summary.Beatmaps = len(dir.Beatmaps.Beatmaps)
		logger.Info().Msgf("Indexed %d beatmaps", summary.Beatmaps)
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if dir.Collections != nil {
		if err := db.WriteCollectionListing(dir.Collections); err != nil {
			return summary, fmt.Errorf("index collections: %w", err)
		}
		summary.Collections = len(dir.Collections.Collections)
		logger.Info().Msgf("Indexed %d collections", summary.Collections)
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if dir.Scores != nil {
		if err := db.WriteScoreListing(dir.Scores); err != nil {
			return summary, fmt.Errorf("index scores: %w", err)
		}
		summary.Scores = dir.Scores.Count()
		logger.Info().Msgf("Indexed %d scores", summary.Scores)
	}
	return summary, nil
}
