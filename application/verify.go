package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MingxuanGame/OsuDB/osudb"
)

type FileKind int

//goland:noinspection ALL
const (
	KindBeatmapListing FileKind = iota
	KindCollectionListing
	KindScoreListing
	KindReplay
)

var fileKindNames = [...]string{"beatmaps", "collections", "scores", "replay"}

func (k FileKind) String() string {
	if k < KindBeatmapListing || k > KindReplay {
		return "unknown"
	}
	return fileKindNames[k]
}

func ParseFileKind(name string) (FileKind, error) {
	for i, n := range fileKindNames {
		if strings.EqualFold(n, name) {
			return FileKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown file kind %q, expected one of %s", name, strings.Join(fileKindNames[:], ", "))
}

// DetectFileKind guesses the kind from the file names the client uses.
func DetectFileKind(path string) (FileKind, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case name == "osu!.db":
		return KindBeatmapListing, nil
	case name == "collection.db":
		return KindCollectionListing, nil
	case name == "scores.db":
		return KindScoreListing, nil
	case strings.HasSuffix(name, ".osr"):
		return KindReplay, nil
	}
	return 0, fmt.Errorf("cannot tell the kind of %s, pass --kind", path)
}

type VerifyResult struct {
	Kind            FileKind
	Size            int
	EncodedSize     int
	Match           bool
	FirstDifference int // -1 when the encoding matches
}

func roundTrip[T any](data []byte, decode func([]byte) (*T, error), encode func(*T) ([]byte, error)) ([]byte, error) {
	value, err := decode(data)
	if err != nil {
		return nil, err
	}
	return encode(value)
}

// VerifyRoundTrip decodes data, encodes the result again and compares the bytes.
func VerifyRoundTrip(kind FileKind, data []byte) (VerifyResult, error) {
	var encoded []byte
	var err error
	switch kind {
	case KindBeatmapListing:
		encoded, err = roundTrip(data, osudb.DecodeBeatmapListing, osudb.EncodeBeatmapListing)
	case KindCollectionListing:
		encoded, err = roundTrip(data, osudb.DecodeCollectionListing, osudb.EncodeCollectionListing)
	case KindScoreListing:
		encoded, err = roundTrip(data, osudb.DecodeScoreListing, osudb.EncodeScoreListing)
	case KindReplay:
		encoded, err = roundTrip(data, osudb.DecodeScoreReplay, osudb.EncodeScoreReplay)
	default:
		return VerifyResult{}, fmt.Errorf("unknown file kind %d", kind)
	}
	if err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{Kind: kind, Size: len(data), EncodedSize: len(encoded), FirstDifference: firstDifference(data, encoded)}
	result.Match = result.FirstDifference < 0
	return result, nil
}

func firstDifference(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
