package model

import "time"

// ReplayDataAbsent is the declared replay data length meaning "no replay data".
const ReplayDataAbsent uint32 = 0xFFFFFFFF

// ScoreListing is the content of scores.db.
type ScoreListing struct {
	Version       uint32
	BeatmapScores []BeatmapScores
}

type BeatmapScores struct {
	BeatmapHash OsuString
	Scores      []ScoreReplay
}

// ScoreReplay is one play, either a scores.db record or a standalone .osr replay.
type ScoreReplay struct {
	GameplayMode GameplayMode
	Version      uint32
	BeatmapHash  OsuString
	PlayerName   OsuString
	ReplayHash   OsuString

	Hits300  uint16
	Hits100  uint16 // 150s in taiko, drops in catch
	Hits50   uint16 // droplets in catch
	HitsGeki uint16 // rainbow 300s in mania
	HitsKatu uint16 // 200s in mania, missed droplets in catch
	Misses   uint16

	Score          uint32
	MaxCombo       uint16
	IsPerfectCombo bool
	Mods           Mods

	// nil when the lifebar string was absent
	LifebarGraph *LifebarGraph
	Timestamp    time.Time

	// LZMA compressed replay actions, left compressed. nil means absent, an
	// empty non-nil slice means a present zero-length payload.
	ReplayData []byte

	OnlineScoreId uint64

	// Only present with Target Practice: the summed accuracy of all targets.
	AdditionalModInfo *float64
}

func (s *ScoreReplay) HasReplayData() bool {
	return s.ReplayData != nil
}

// TotalHits counts every judgement recorded for the play.
func (s *ScoreReplay) TotalHits() int {
	return int(s.Hits300) + int(s.Hits100) + int(s.Hits50) + int(s.HitsGeki) + int(s.HitsKatu) + int(s.Misses)
}

func (l *ScoreListing) ScoresFor(hash string) []ScoreReplay {
	for _, b := range l.BeatmapScores {
		if b.BeatmapHash.Value == hash {
			return b.Scores
		}
	}
	return nil
}

func (l *ScoreListing) Count() int {
	n := 0
	for _, b := range l.BeatmapScores {
		n += len(b.Scores)
	}
	return n
}
