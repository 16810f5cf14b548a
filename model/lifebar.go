package model

import (
	"math"
	"strconv"
	"strings"
)

// LifebarPoint is one "time|health" sample of a replay's lifebar graph.
type LifebarPoint struct {
	Time   uint32 // milliseconds into the song
	Health float32

	// both fields as they were written in the parsed string
	rawTime   string
	rawHealth string
}

func NewLifebarPoint(time uint32, health float32) LifebarPoint {
	return LifebarPoint{Time: time, Health: health}
}

func (p LifebarPoint) timeText() string {
	if p.rawTime != "" {
		if v, err := strconv.ParseUint(p.rawTime, 10, 32); err == nil && uint32(v) == p.Time {
			return p.rawTime
		}
	}
	return strconv.FormatUint(uint64(p.Time), 10)
}

func (p LifebarPoint) healthText() string {
	if p.rawHealth != "" {
		if v, err := strconv.ParseFloat(p.rawHealth, 32); err == nil && sameFloat32(float32(v), p.Health) {
			return p.rawHealth
		}
	}
	return strconv.FormatFloat(float64(p.Health), 'f', -1, 32)
}

func sameFloat32(a, b float32) bool {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return math.IsNaN(float64(a)) && math.IsNaN(float64(b))
	}
	return a == b
}

type LifebarGraph struct {
	Points []LifebarPoint

	// Text after the last complete "time|health," pair, kept verbatim.
	Trailing string
}

// ParseLifebarGraph reads "time|health," pairs until the text no longer
// matches one; whatever is left goes to Trailing. It never fails.
func ParseLifebarGraph(s string) LifebarGraph {
	var graph LifebarGraph
	rest := s
	for rest != "" {
		end := strings.IndexByte(rest, ',')
		if end < 0 {
			break
		}
		timeText, healthText, ok := strings.Cut(rest[:end], "|")
		if !ok || !isDigits(timeText) || !isFloatText(healthText) {
			break
		}
		t, err := strconv.ParseUint(timeText, 10, 32)
		if err != nil {
			break
		}
		h, err := strconv.ParseFloat(healthText, 32)
		if err != nil {
			break
		}
		graph.Points = append(graph.Points, LifebarPoint{Time: uint32(t), Health: float32(h), rawTime: timeText, rawHealth: healthText})
		rest = rest[end+1:]
	}
	graph.Trailing = rest
	return graph
}

// String encodes the graph back to "time|health," pairs, trailing comma included.
func (g LifebarGraph) String() string {
	var sb strings.Builder
	for _, p := range g.Points {
		sb.WriteString(p.timeText())
		sb.WriteByte('|')
		sb.WriteString(p.healthText())
		sb.WriteByte(',')
	}
	sb.WriteString(g.Trailing)
	return sb.String()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatText accepts [+-]digits[.digits][(e|E)[+-]digits] with at least one
// mantissa digit, or "nan" and "inf" in any case.
func isFloatText(s string) bool {
	if strings.EqualFold(s, "nan") || strings.EqualFold(s, "inf") {
		return true
	}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		mantissa++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exponent := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			exponent++
		}
		if exponent == 0 {
			return false
		}
	}
	return i == len(s)
}
