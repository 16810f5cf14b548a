package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/MingxuanGame/OsuDB/application"
	. "github.com/MingxuanGame/OsuDB/model"
)

func ShowBeatmaps(w io.Writer, path string, hash string, limit int) error {
	listing, err := application.LoadBeatmapListing(path)
	if err != nil {
		return err
	}
	if hash != "" {
		entry := listing.FindByHash(hash)
		if entry == nil {
			return fmt.Errorf("no beatmap with hash %s in %s", hash, path)
		}
		printBeatmap(w, entry)
		return nil
	}

	_, _ = fmt.Fprintf(w, "Version: %d\n", listing.Version)
	_, _ = fmt.Fprintf(w, "Player: %s\n", listing.PlayerName.Or("-"))
	_, _ = fmt.Fprintf(w, "Folders: %d\n", listing.FolderCount)
	_, _ = fmt.Fprintf(w, "Beatmaps: %d\n", len(listing.Beatmaps))
	for i := range listing.Beatmaps {
		if limit > 0 && i >= limit {
			_, _ = fmt.Fprintf(w, "... %d more\n", len(listing.Beatmaps)-limit)
			break
		}
		b := &listing.Beatmaps[i]
		_, _ = fmt.Fprintf(w, "%-32s  %-10s %-11s %s\n", b.Hash.Value, b.GameplayMode, b.RankedStatus, b.DisplayName())
	}
	return nil
}

func printBeatmap(w io.Writer, b *BeatmapEntry) {
	_, _ = fmt.Fprintln(w, b.DisplayName())
	if b.TitleUnicode.Present && b.TitleUnicode.Value != b.Title.Value {
		_, _ = fmt.Fprintf(w, "  Unicode:    %s - %s\n", b.ArtistUnicode.Value, b.TitleUnicode.Value)
	}
	_, _ = fmt.Fprintf(w, "  Creator:    %s\n", b.Creator.Or("-"))
	_, _ = fmt.Fprintf(w, "  Mode:       %s\n", b.GameplayMode)
	_, _ = fmt.Fprintf(w, "  Status:     %s\n", b.RankedStatus)
	_, _ = fmt.Fprintf(w, "  IDs:        beatmap %d, set %d\n", b.DifficultyId, b.BeatmapId)
	_, _ = fmt.Fprintf(w, "  Objects:    %d circles, %d sliders, %d spinners\n", b.HitCircleCount, b.SliderCount, b.SpinnerCount)
	_, _ = fmt.Fprintf(w, "  Difficulty: AR %g CS %g HP %g OD %g\n", b.ApproachRate, b.CircleSize, b.HPDrain, b.OverallDifficulty)
	if rating, ok := b.NoModStarRating(); ok {
		_, _ = fmt.Fprintf(w, "  Stars:      %.2f\n", rating)
	}
	_, _ = fmt.Fprintf(w, "  Length:     %s (drain %s)\n", time.Duration(b.TotalTime)*time.Millisecond, time.Duration(b.DrainTime)*time.Second)
	_, _ = fmt.Fprintf(w, "  Timing:     %d points\n", len(b.TimingPoints))
	_, _ = fmt.Fprintf(w, "  Folder:     %s\n", b.FolderName.Or("-"))
	_, _ = fmt.Fprintf(w, "  File:       %s\n", b.BeatmapFilename.Or("-"))
	if !b.IsUnplayed {
		_, _ = fmt.Fprintf(w, "  Played:     %s\n", b.LastPlayed.Format(time.DateTime))
	}
}
