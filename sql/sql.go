package sql

import (
	"database/sql"
	"math"
	"time"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/MingxuanGame/OsuDB/scoring"
)
import _ "github.com/ncruces/go-sqlite3/driver"
import _ "github.com/ncruces/go-sqlite3/embed"

type Database struct {
	*sql.DB
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func OpenDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &Database{db}, nil
}

func nullString(s OsuString) sql.NullString {
	return sql.NullString{String: s.Value, Valid: s.Present}
}

func osuString(s sql.NullString) OsuString {
	return OsuString{Value: s.String, Present: s.Valid}
}

func unixTime(t time.Time) int64 {
	return t.Unix()
}

func writeBeatmap(stmt *sql.Stmt, b *BeatmapEntry) error {
	rating, _ := b.NoModStarRating()
	_, err := stmt.Exec(
		nullString(b.Hash), b.DifficultyId, b.BeatmapId,
		nullString(b.Artist), nullString(b.Title), nullString(b.Creator), nullString(b.Difficulty),
		b.RankedStatus, b.GameplayMode, rating,
		nullString(b.FolderName), nullString(b.BeatmapFilename),
		unixTime(b.LastModification), b.DrainTime, b.TotalTime,
	)
	return err
}

func (d *Database) WriteBeatmapListing(listing *BeatmapListing) error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO beatmaps (md5, difficulty_id, beatmap_id, artist, title, creator, difficulty,
		ranked_status, gamemode, star_rating, folder_name, beatmap_filename, last_modification, drain_time, total_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	for i := range listing.Beatmaps {
		// entries without a hash cannot be looked up
		if !listing.Beatmaps[i].Hash.Present {
			continue
		}
		err = writeBeatmap(stmt, &listing.Beatmaps[i])
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *Database) WriteCollectionListing(listing *CollectionListing) error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO collections (collection_index, name, md5, position) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	for index, c := range listing.Collections {
		for i, hash := range c.BeatmapHashes {
			if !hash.Present {
				continue
			}
			_, err = stmt.Exec(index, c.Name.Value, hash.Value, i)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

func (d *Database) WriteScoreListing(listing *ScoreListing) error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO scores (replay_md5, beatmap_md5, player_name, gamemode, score, max_combo,
		mods, accuracy, grade, timestamp, online_score_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func(stmt *sql.Stmt) {
		_ = stmt.Close()
	}(stmt)

	for _, beatmap := range listing.BeatmapScores {
		for i := range beatmap.Scores {
			s := &beatmap.Scores[i]
			accuracy := sql.NullFloat64{Float64: scoring.Accuracy(s)}
			accuracy.Valid = !math.IsNaN(accuracy.Float64)
			_, err = stmt.Exec(
				nullString(s.ReplayHash), nullString(beatmap.BeatmapHash), nullString(s.PlayerName),
				s.GameplayMode, s.Score, s.MaxCombo, uint32(s.Mods), accuracy, scoring.Grade(s),
				unixTime(s.Timestamp), int64(s.OnlineScoreId),
			)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

//goland:noinspection SqlWithoutWhere
func (d *Database) DropAll() error {
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer func(tx *sql.Tx) {
		_ = tx.Rollback()
	}(tx)

	for _, table := range []string{"beatmaps", "collections", "scores"} {
		_, err = tx.Exec("DROP TABLE IF EXISTS " + table)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(`CREATE TABLE beatmaps (
		md5 TEXT NOT NULL,
		difficulty_id INTEGER NOT NULL,
		beatmap_id INTEGER NOT NULL,
		artist TEXT, title TEXT, creator TEXT, difficulty TEXT,
		ranked_status INTEGER NOT NULL,
		gamemode INTEGER NOT NULL,
		star_rating REAL NOT NULL DEFAULT 0,
		folder_name TEXT, beatmap_filename TEXT,
		last_modification INTEGER DEFAULT 0,
		drain_time INTEGER, total_time INTEGER,
		CONSTRAINT beatmaps_pk PRIMARY KEY (md5)
	)`)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`CREATE TABLE collections (
		collection_index INTEGER NOT NULL,
		name TEXT NOT NULL,
		md5 TEXT NOT NULL,
		position INTEGER NOT NULL,
		CONSTRAINT collections_pk PRIMARY KEY (collection_index, position)
	)`)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY,
		replay_md5 TEXT UNIQUE,
		beatmap_md5 TEXT,
		player_name TEXT,
		gamemode INTEGER NOT NULL,
		score INTEGER NOT NULL,
		max_combo INTEGER NOT NULL,
		mods INTEGER NOT NULL,
		accuracy REAL,
		grade INTEGER NOT NULL,
		timestamp INTEGER NOT NULL,
		online_score_id INTEGER NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = tx.Exec("CREATE INDEX scores_beatmap ON scores (beatmap_md5)")
	if err != nil {
		return err
	}
	return tx.Commit()
}

// ReadBeatmap returns the indexed beatmap with the given MD5 hash, or nil.
func (d *Database) ReadBeatmap(hash string) (*IndexedBeatmap, error) {
	row := d.QueryRow(`SELECT md5, difficulty_id, beatmap_id, artist, title, creator, difficulty, ranked_status, gamemode,
		star_rating, folder_name, beatmap_filename, last_modification, drain_time, total_time FROM beatmaps WHERE md5 = ?`, hash)

	var b IndexedBeatmap
	var md5, artist, title, creator, difficulty, folder, filename sql.NullString
	var modified int64
	err := row.Scan(&md5, &b.DifficultyId, &b.BeatmapId, &artist, &title, &creator, &difficulty, &b.RankedStatus,
		&b.GameplayMode, &b.StarRating, &folder, &filename, &modified, &b.DrainTime, &b.TotalTime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.Hash = osuString(md5)
	b.Artist = osuString(artist)
	b.Title = osuString(title)
	b.Creator = osuString(creator)
	b.Difficulty = osuString(difficulty)
	b.FolderName = osuString(folder)
	b.BeatmapFilename = osuString(filename)
	b.LastModification = time.Unix(modified, 0).UTC()
	return &b, nil
}

// ReadCollection returns the beatmap hashes of the collections called name,
// in file order. Collections sharing a name are concatenated.
func (d *Database) ReadCollection(name string) ([]string, error) {
	rows, err := d.Query("SELECT md5 FROM collections WHERE name = ? ORDER BY collection_index, position", name)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	hashes := make([]string, 0)
	for rows.Next() {
		var hash string
		err := rows.Scan(&hash)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, hash)
	}
	return hashes, rows.Err()
}

// ReadScores returns the scores set on a beatmap, best score first.
func (d *Database) ReadScores(hash string) ([]IndexedScore, error) {
	rows, err := d.Query(`SELECT replay_md5, beatmap_md5, player_name, gamemode, score, max_combo, mods, accuracy, grade,
		timestamp, online_score_id FROM scores WHERE beatmap_md5 = ? ORDER BY score DESC, id`, hash)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	scores := make([]IndexedScore, 0)
	for rows.Next() {
		var s IndexedScore
		var replay, beatmap, player sql.NullString
		var accuracy sql.NullFloat64
		var mods uint32
		var timestamp, online int64
		err := rows.Scan(&replay, &beatmap, &player, &s.GameplayMode, &s.Score, &s.MaxCombo, &mods, &accuracy, &s.Grade,
			&timestamp, &online)
		if err != nil {
			return nil, err
		}
		s.ReplayHash = osuString(replay)
		s.BeatmapHash = osuString(beatmap)
		s.PlayerName = osuString(player)
		s.Mods = Mods(mods)
		s.Accuracy = math.NaN()
		if accuracy.Valid {
			s.Accuracy = accuracy.Float64
		}
		s.Timestamp = time.Unix(timestamp, 0).UTC()
		s.OnlineScoreId = uint64(online)
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
