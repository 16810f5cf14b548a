package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/MingxuanGame/OsuDB/application"
	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/scoring"
)

func scoreLine(s *ScoreReplay) string {
	return fmt.Sprintf("%-16s %10d %7.2f%% %-8s %5dx %-8s %s",
		s.PlayerName.Or("-"), s.Score, scoring.Accuracy(s), scoring.Grade(s), s.MaxCombo, s.Mods, s.Timestamp.Format(time.DateTime))
}

func ShowScores(w io.Writer, path string, hash string) error {
	listing, err := application.LoadScoreListing(path)
	if err != nil {
		return err
	}
	found := false
	for _, b := range listing.BeatmapScores {
		if hash != "" && b.BeatmapHash.Value != hash {
			continue
		}
		found = true
		_, _ = fmt.Fprintf(w, "%s (%d scores)\n", b.BeatmapHash.Or("<no hash>"), len(b.Scores))
		for i := range b.Scores {
			_, _ = fmt.Fprintf(w, "  %s\n", scoreLine(&b.Scores[i]))
		}
	}
	if hash != "" && !found {
		return fmt.Errorf("no scores for beatmap %s", hash)
	}
	return nil
}

func ShowReplays(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no file specified")
	}
	for _, path := range paths {
		s, err := application.LoadReplay(path)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, path)
		_, _ = fmt.Fprintf(w, "  Player:     %s\n", s.PlayerName.Or("-"))
		_, _ = fmt.Fprintf(w, "  Mode:       %s (client %d)\n", s.GameplayMode, s.Version)
		_, _ = fmt.Fprintf(w, "  Beatmap:    %s\n", s.BeatmapHash.Or("-"))
		_, _ = fmt.Fprintf(w, "  Score:      %d (%s)\n", s.Score, s.Mods)
		_, _ = fmt.Fprintf(w, "  Accuracy:   %.2f%% %s\n", scoring.Accuracy(s), scoring.Grade(s))
		_, _ = fmt.Fprintf(w, "  Judgements: %d/%d/%d/%d geki %d katu %d\n", s.Hits300, s.Hits100, s.Hits50, s.Misses, s.HitsGeki, s.HitsKatu)
		combo := fmt.Sprintf("%dx", s.MaxCombo)
		if s.IsPerfectCombo {
			combo += " (perfect)"
		}
		_, _ = fmt.Fprintf(w, "  Combo:      %s\n", combo)
		_, _ = fmt.Fprintf(w, "  Played:     %s\n", s.Timestamp.Format(time.DateTime))
		if s.LifebarGraph != nil {
			_, _ = fmt.Fprintf(w, "  Lifebar:    %d points\n", len(s.LifebarGraph.Points))
		}
		if s.HasReplayData() {
			_, _ = fmt.Fprintf(w, "  Replay:     %d bytes\n", len(s.ReplayData))
		} else {
			_, _ = fmt.Fprintln(w, "  Replay:     none")
		}
		if s.OnlineScoreId != 0 {
			_, _ = fmt.Fprintf(w, "  Online ID:  %d\n", s.OnlineScoreId)
		}
		if s.AdditionalModInfo != nil {
			_, _ = fmt.Fprintf(w, "  Target acc: %g\n", *s.AdditionalModInfo)
		}
	}
	return nil
}
