package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLifebarGraph(t *testing.T) {
	text := "1676|1,3732|1,5805|1,7847|1,9909|1,"
	graph := ParseLifebarGraph(text)
	want := []struct {
		time   uint32
		health float32
	}{{1676, 1}, {3732, 1}, {5805, 1}, {7847, 1}, {9909, 1}}

	assert.Len(t, graph.Points, len(want))
	for i, p := range graph.Points {
		assert.Equal(t, want[i].time, p.Time)
		assert.Equal(t, want[i].health, p.Health)
	}
	assert.Empty(t, graph.Trailing)
	assert.Equal(t, text, graph.String())
}

func TestLifebarGraphKeepsNumericText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		points   int
		trailing string
	}{
		{"empty", "", 0, ""},
		{"fractions", "0|1,120|0.9834212,240|0.75,", 3, ""},
		{"padded", "10|1.00,20|0.500,", 2, ""},
		{"exponent", "5|1E-05,", 1, ""},
		{"zero padded time", "01676|1,3732|1,", 2, ""},
		{"nan and inf", "1676|NaN,3732|1,4000|inf,5000|-inf,", 3, "5000|-inf,"},
		{"infinity", "1|Infinity,", 0, "1|Infinity,"},
		{"missing comma", "1676|1,3732|1", 1, "3732|1"},
		{"garbage", "1|1,abc,2|1,", 1, "abc,2|1,"},
		{"negative time", "-5|1,", 0, "-5|1,"},
		{"trailing comma only", ",", 0, ","},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := ParseLifebarGraph(tt.text)
			assert.Len(t, graph.Points, tt.points)
			assert.Equal(t, tt.trailing, graph.Trailing)
			assert.Equal(t, tt.text, graph.String())
		})
	}
}

func TestLifebarGraphString(t *testing.T) {
	graph := LifebarGraph{Points: []LifebarPoint{NewLifebarPoint(0, 1), NewLifebarPoint(250, 0.5)}}
	assert.Equal(t, "0|1,250|0.5,", graph.String())

	parsed := ParseLifebarGraph("100|0.50,")
	parsed.Points[0].Health = 0.25
	assert.Equal(t, "100|0.25,", parsed.String())
}

func TestLifebarGraphSpecialValues(t *testing.T) {
	graph := ParseLifebarGraph("1676|NaN,3732|INF,")
	assert.Len(t, graph.Points, 2)
	assert.True(t, math.IsNaN(float64(graph.Points[0].Health)))
	assert.True(t, math.IsInf(float64(graph.Points[1].Health), 1))
	assert.Equal(t, "1676|NaN,3732|INF,", graph.String())

	padded := ParseLifebarGraph("0042|1,")
	assert.Equal(t, uint32(42), padded.Points[0].Time)
	padded.Points[0].Time = 43
	assert.Equal(t, "43|1,", padded.String())
}
