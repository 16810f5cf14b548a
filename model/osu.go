package model

import "strings"

type GameplayMode uint8

//goland:noinspection ALL
const (
	ModeStandard GameplayMode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

var gameplayModeNames = [...]string{"osu!", "osu!taiko", "osu!catch", "osu!mania"}

func (m GameplayMode) Valid() bool {
	return m <= ModeMania
}

func (m GameplayMode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return gameplayModeNames[m]
}

// RankedStatus is the submission state of a beatmap. 3 is never written by the client.
type RankedStatus uint8

//goland:noinspection ALL
const (
	StatusUnknown     RankedStatus = 0
	StatusUnsubmitted RankedStatus = 1
	StatusPending     RankedStatus = 2 // pending / WIP / graveyard
	StatusRanked      RankedStatus = 4
	StatusApproved    RankedStatus = 5
	StatusQualified   RankedStatus = 6
	StatusLoved       RankedStatus = 7
)

func (s RankedStatus) Valid() bool {
	return s <= StatusLoved && s != 3
}

func (s RankedStatus) String() string {
	switch s {
	case StatusUnknown:
		return "Unknown"
	case StatusUnsubmitted:
		return "Unsubmitted"
	case StatusPending:
		return "Pending"
	case StatusRanked:
		return "Ranked"
	case StatusApproved:
		return "Approved"
	case StatusQualified:
		return "Qualified"
	case StatusLoved:
		return "Loved"
	}
	return "Invalid"
}

type Mods uint32

//goland:noinspection ALL
const (
	ModNone           Mods = 0
	ModNoFail         Mods = 1 << 0
	ModEasy           Mods = 1 << 1
	ModTouchDevice    Mods = 1 << 2
	ModHidden         Mods = 1 << 3
	ModHardRock       Mods = 1 << 4
	ModSuddenDeath    Mods = 1 << 5
	ModDoubleTime     Mods = 1 << 6
	ModRelax          Mods = 1 << 7
	ModHalfTime       Mods = 1 << 8
	ModNightcore      Mods = ModDoubleTime | 1<<9 // always set together with DT
	ModFlashlight     Mods = 1 << 10
	ModAutoplay       Mods = 1 << 11
	ModSpunOut        Mods = 1 << 12
	ModAutopilot      Mods = 1 << 13
	ModPerfect        Mods = 1 << 14
	ModKey4           Mods = 1 << 15
	ModKey5           Mods = 1 << 16
	ModKey6           Mods = 1 << 17
	ModKey7           Mods = 1 << 18
	ModKey8           Mods = 1 << 19
	ModKeyMod         Mods = ModKey4 | ModKey5 | ModKey6 | ModKey7 | ModKey8
	ModFadeIn         Mods = 1 << 20
	ModRandom         Mods = 1 << 21
	ModCinema         Mods = 1 << 22
	ModTargetPractice Mods = 1 << 23
	ModKey9           Mods = 1 << 24
	ModCoop           Mods = 1 << 25
	ModKey1           Mods = 1 << 26
	ModKey3           Mods = 1 << 27
	ModKey2           Mods = 1 << 28
	ModScoreV2        Mods = 1 << 29
	ModMirror         Mods = 1 << 30

	KnownMods Mods = 1<<31 - 1
)

// TruncateMods keeps the known flag bits of a raw bitmask and drops the rest.
func TruncateMods(raw uint32) Mods {
	return Mods(raw) & KnownMods
}

// Has reports whether every bit of flag is set, so combination flags such as
// ModNightcore only match when all of their bits are present.
func (m Mods) Has(flag Mods) bool {
	return flag != ModNone && m&flag == flag
}

func (m Mods) HasAny(flags ...Mods) bool {
	for _, flag := range flags {
		if m.Has(flag) {
			return true
		}
	}
	return false
}

var modAcronyms = []struct {
	flag Mods
	name string
}{
	{ModNoFail, "NF"}, {ModEasy, "EZ"}, {ModTouchDevice, "TD"}, {ModHidden, "HD"},
	{ModHardRock, "HR"}, {ModPerfect, "PF"}, {ModSuddenDeath, "SD"}, {ModNightcore, "NC"},
	{ModDoubleTime, "DT"}, {ModRelax, "RX"}, {ModHalfTime, "HT"}, {ModFlashlight, "FL"},
	{ModAutoplay, "AT"}, {ModSpunOut, "SO"}, {ModAutopilot, "AP"}, {ModKey1, "1K"},
	{ModKey2, "2K"}, {ModKey3, "3K"}, {ModKey4, "4K"}, {ModKey5, "5K"}, {ModKey6, "6K"},
	{ModKey7, "7K"}, {ModKey8, "8K"}, {ModKey9, "9K"}, {ModFadeIn, "FI"}, {ModRandom, "RD"},
	{ModCinema, "CN"}, {ModTargetPractice, "TP"}, {ModCoop, "CO"}, {ModScoreV2, "V2"}, {ModMirror, "MR"},
}

// String renders the set as concatenated acronyms ("HDNC"); DT is not
// repeated when NC is set.
func (m Mods) String() string {
	if m == ModNone {
		return "NM"
	}
	var sb strings.Builder
	var seen Mods
	for _, mod := range modAcronyms {
		if m.Has(mod.flag) && seen&mod.flag != mod.flag {
			sb.WriteString(mod.name)
			seen |= mod.flag
		}
	}
	return sb.String()
}

type Grade int

//goland:noinspection ALL
const (
	GradeSS Grade = iota
	GradeS
	GradeA
	GradeB
	GradeC
	GradeD
	GradeSilverSS
	GradeSilverS
)

var gradeNames = [...]string{"SS", "S", "A", "B", "C", "D", "SilverSS", "SilverS"}

func (g Grade) String() string {
	if g < GradeSS || g > GradeSilverS {
		return "?"
	}
	return gradeNames[g]
}
