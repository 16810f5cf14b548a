package osudb

import (
	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/pkg/errors"
)

const (
	minBeatmapScoresSize = 1 + 4
	// mode, version, three absent strings, six counters, score, combo,
	// perfect, mods, absent lifebar, timestamp, blob length, online id
	minScoreSize = 1 + 4 + 3 + 12 + 4 + 2 + 1 + 4 + 1 + 8 + 4 + 8
)

// DecodeScoreListing decodes the content of scores.db.
func DecodeScoreListing(data []byte) (*ScoreListing, error) {
	r := NewReader(data)
	listing := &ScoreListing{}
	listing.Version = r.Uint32("version")
	count := r.Count("beatmap_count", minBeatmapScoresSize)
	debugEvent().Uint32("version", listing.Version).Int("beatmaps", count).Msg("Decoding score listing")

	listing.BeatmapScores = make([]BeatmapScores, 0, count)
	for i := 0; i < count; i++ {
		beatmap := BeatmapScores{BeatmapHash: r.String("beatmap_md5")}
		scores := r.Count("score_count", minScoreSize)
		beatmap.Scores = make([]ScoreReplay, 0, scores)
		for j := 0; j < scores && r.Err() == nil; j++ {
			score := decodeScoreReplay(r)
			if r.Err() != nil {
				return nil, errors.Wrapf(r.Err(), "beatmap %d score %d", i, j)
			}
			beatmap.Scores = append(beatmap.Scores, score)
		}
		if r.Err() != nil {
			return nil, errors.Wrapf(r.Err(), "beatmap %d", i)
		}
		listing.BeatmapScores = append(listing.BeatmapScores, beatmap)
	}
	if err := r.Finish(); err != nil {
		return nil, errors.Wrap(err, "score listing")
	}
	return listing, nil
}

// DecodeScoreReplay decodes a standalone .osr replay: exactly one score record.
func DecodeScoreReplay(data []byte) (*ScoreReplay, error) {
	r := NewReader(data)
	score := decodeScoreReplay(r)
	if err := r.Finish(); err != nil {
		return nil, errors.Wrap(err, "replay")
	}
	debugEvent().Uint32("version", score.Version).Bool("replay_data", score.HasReplayData()).Msg("Decoded replay")
	return &score, nil
}

func decodeScoreReplay(r *Reader) ScoreReplay {
	var s ScoreReplay
	s.GameplayMode = r.GameplayMode("gameplay_mode")
	s.Version = r.Uint32("version")
	s.BeatmapHash = r.String("beatmap_md5")
	s.PlayerName = r.String("player_name")
	s.ReplayHash = r.String("replay_md5")
	s.Hits300 = r.Uint16("hits_300")
	s.Hits100 = r.Uint16("hits_100")
	s.Hits50 = r.Uint16("hits_50")
	s.HitsGeki = r.Uint16("hits_geki")
	s.HitsKatu = r.Uint16("hits_katu")
	s.Misses = r.Uint16("misses")
	s.Score = r.Uint32("score")
	s.MaxCombo = r.Uint16("max_combo")
	s.IsPerfectCombo = r.Bool("is_perfect_combo")
	s.Mods = r.Mods("mods")
	if lifebar := r.String("lifebar_graph"); lifebar.Present {
		graph := ParseLifebarGraph(lifebar.Value)
		s.LifebarGraph = &graph
	}
	s.Timestamp = r.DateTime("timestamp")

	if length := r.Uint32("replay_data_length"); length != ReplayDataAbsent && r.Err() == nil {
		if uint64(length) > uint64(r.Remaining()) {
			r.fail(MalformedPrimitive, r.Offset(), "replay_data",
				errors.Wrapf(ErrUnexpectedEOF, "%d bytes declared, %d left", length, r.Remaining()))
		} else {
			s.ReplayData = r.Bytes("replay_data", int(length))
		}
	}
	s.OnlineScoreId = r.Uint64("online_score_id")
	if s.Mods.Has(ModTargetPractice) {
		info := r.Float64("additional_mod_info")
		s.AdditionalModInfo = &info
	}
	return s
}

func EncodeScoreListing(listing *ScoreListing) ([]byte, error) {
	w := NewWriter()
	w.Uint32(listing.Version)
	w.Count("beatmap_count", len(listing.BeatmapScores))
	for i, beatmap := range listing.BeatmapScores {
		w.String(beatmap.BeatmapHash)
		w.Count("score_count", len(beatmap.Scores))
		for j := range beatmap.Scores {
			encodeScoreReplay(w, &beatmap.Scores[j])
			if w.Err() != nil {
				return nil, errors.Wrapf(w.Err(), "beatmap %d score %d", i, j)
			}
		}
	}
	if w.Err() != nil {
		return nil, errors.Wrap(w.Err(), "score listing")
	}
	return w.Bytes(), nil
}

func EncodeScoreReplay(score *ScoreReplay) ([]byte, error) {
	w := NewWriter()
	encodeScoreReplay(w, score)
	if w.Err() != nil {
		return nil, errors.Wrap(w.Err(), "replay")
	}
	return w.Bytes(), nil
}

func encodeScoreReplay(w *Writer, s *ScoreReplay) {
	w.GameplayMode("gameplay_mode", s.GameplayMode)
	w.Uint32(s.Version)
	w.String(s.BeatmapHash)
	w.String(s.PlayerName)
	w.String(s.ReplayHash)
	w.Uint16(s.Hits300)
	w.Uint16(s.Hits100)
	w.Uint16(s.Hits50)
	w.Uint16(s.HitsGeki)
	w.Uint16(s.HitsKatu)
	w.Uint16(s.Misses)
	w.Uint32(s.Score)
	w.Uint16(s.MaxCombo)
	w.Bool(s.IsPerfectCombo)
	w.Mods(s.Mods)
	if s.LifebarGraph != nil {
		w.String(Some(s.LifebarGraph.String()))
	} else {
		w.String(None())
	}
	w.DateTime("timestamp", s.Timestamp)

	switch {
	case s.ReplayData == nil:
		w.Uint32(ReplayDataAbsent)
	case uint64(len(s.ReplayData)) >= uint64(ReplayDataAbsent):
		w.fail("replay_data", errors.Wrapf(ErrInvalidValue, "%d bytes of replay data", len(s.ReplayData)))
	default:
		w.Uint32(uint32(len(s.ReplayData)))
		w.Raw(s.ReplayData)
	}
	w.Uint64(s.OnlineScoreId)

	if s.Mods.Has(ModTargetPractice) {
		if s.AdditionalModInfo == nil {
			w.fail("additional_mod_info", errors.Wrap(ErrInvalidValue, "target practice score without accuracy"))
			return
		}
		w.Float64(*s.AdditionalModInfo)
	}
}
