package osudb

import (
	"encoding/binary"
	"math"
	"time"
	"unicode/utf8"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/pkg/errors"
)

const (
	stringAbsent  = 0x00
	stringPresent = 0x0b

	ticksPerSecond = 10_000_000
	ticksPerDay    = 24 * 60 * 60 * ticksPerSecond
)

// .NET DateTime.Ticks count 100ns intervals from 0001-01-01 00:00 UTC.
var windowsEpoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// Reader is a little-endian cursor over an osu! database buffer. The first
// failure is kept; later reads return zero values and do not move the cursor,
// so a run of field reads needs a single Err check at the end.
type Reader struct {
	data []byte
	pos  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Offset() int {
	return r.pos
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(kind ErrorKind, offset int, field string, err error) {
	if r.err == nil {
		r.err = &DecodeError{Kind: kind, Offset: offset, Field: field, Err: err}
	}
}

func (r *Reader) take(field string, n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.Remaining() {
		r.fail(MalformedPrimitive, r.pos, field, ErrUnexpectedEOF)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *Reader) Byte(field string) uint8 {
	b := r.take(field, 1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Bool reads one byte; any non-zero value is true.
func (r *Reader) Bool(field string) bool {
	return r.Byte(field) != 0
}

func (r *Reader) Uint16(field string) uint16 {
	b := r.take(field, 2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) Uint32(field string) uint32 {
	b := r.take(field, 4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) Uint64(field string) uint64 {
	b := r.take(field, 8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *Reader) Float32(field string) float32 {
	return math.Float32frombits(r.Uint32(field))
}

func (r *Reader) Float64(field string) float64 {
	return math.Float64frombits(r.Uint64(field))
}

// Bytes copies the next n bytes out of the buffer.
func (r *Reader) Bytes(field string, n int) []byte {
	b := r.take(field, n)
	if r.err != nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Expect consumes one byte that must equal marker.
func (r *Reader) Expect(field string, marker byte) {
	start := r.pos
	b := r.Byte(field)
	if r.err == nil && b != marker {
		r.fail(MismatchedTag, start, field, errors.Wrapf(ErrTagMismatch, "want 0x%02x, got 0x%02x", marker, b))
	}
}

// Uleb128 decodes an unsigned LEB128 integer.
func (r *Reader) Uleb128(field string) uint64 {
	if r.err != nil {
		return 0
	}
	start := r.pos
	var result uint64
	var shift uint
	for {
		if r.pos >= len(r.data) {
			r.fail(MalformedPrimitive, start, field, ErrUnexpectedEOF)
			return 0
		}
		b := r.data[r.pos]
		r.pos++
		low := uint64(b & 0x7f)
		if shift >= 64 || (shift == 63 && low > 1) {
			r.fail(MalformedPrimitive, start, field, ErrUlebOverflow)
			return 0
		}
		result |= low << shift
		if b&0x80 == 0 {
			return result
		}
		shift += 7
	}
}

// String decodes an osu! string: 0x00 for absent, or 0x0b, a ULEB128 length
// and that many UTF-8 bytes.
func (r *Reader) String(field string) OsuString {
	start := r.pos
	switch tag := r.Byte(field); {
	case r.err != nil:
		return None()
	case tag == stringAbsent:
		return None()
	case tag != stringPresent:
		r.fail(MalformedPrimitive, start, field, errors.Wrapf(ErrStringMarker, "0x%02x", tag))
		return None()
	}
	length := r.Uleb128(field)
	if r.err != nil {
		return None()
	}
	if length > uint64(r.Remaining()) {
		r.fail(MalformedPrimitive, r.pos, field, errors.Wrapf(ErrUnexpectedEOF, "string of %d bytes declared, %d left", length, r.Remaining()))
		return None()
	}
	textStart := r.pos
	b := r.take(field, int(length))
	if !utf8.Valid(b) {
		r.fail(MalformedPrimitive, textStart, field, ErrInvalidUTF8)
		return None()
	}
	return Some(string(b))
}

// DateTime decodes .NET ticks into a UTC time without losing the 100ns part.
func (r *Reader) DateTime(field string) time.Time {
	ticks := r.Uint64(field)
	if r.err != nil {
		return time.Time{}
	}
	return ticksToTime(ticks)
}

func ticksToTime(ticks uint64) time.Time {
	days := ticks / ticksPerDay
	rest := ticks % ticksPerDay
	return windowsEpoch.AddDate(0, 0, int(days)).
		Add(time.Duration(rest/10) * time.Microsecond).
		Add(time.Duration(rest%10) * 100 * time.Nanosecond)
}

// Mods reads a u32 modifier bitmask; unknown bits are dropped.
func (r *Reader) Mods(field string) Mods {
	return TruncateMods(r.Uint32(field))
}

func (r *Reader) GameplayMode(field string) GameplayMode {
	start := r.pos
	mode := GameplayMode(r.Byte(field))
	if r.err != nil {
		return ModeStandard
	}
	if !mode.Valid() {
		r.fail(UnrecognizedEnumValue, start, field, errors.Wrapf(ErrUnknownMode, "%d", uint8(mode)))
		return ModeStandard
	}
	return mode
}

func (r *Reader) RankedStatus(field string) RankedStatus {
	start := r.pos
	status := RankedStatus(r.Byte(field))
	if r.err != nil {
		return StatusUnknown
	}
	if !status.Valid() {
		r.fail(UnrecognizedEnumValue, start, field, errors.Wrapf(ErrUnknownRankedStatus, "%d", uint8(status)))
		return StatusUnknown
	}
	return status
}

// Count reads a u32 element count and rejects it when even minSize-byte
// elements could not fit in the remaining input, so callers can size
// allocations from the result.
func (r *Reader) Count(field string, minSize int) int {
	start := r.pos
	n := r.Uint32(field)
	if r.err != nil {
		return 0
	}
	if uint64(n)*uint64(minSize) > uint64(r.Remaining()) {
		r.fail(MalformedPrimitive, start, field,
			errors.Wrapf(ErrUnexpectedEOF, "%d elements of at least %d bytes declared, %d bytes left", n, minSize, r.Remaining()))
		return 0
	}
	return int(n)
}

// Finish returns the sticky error, or ErrTrailingData when input is left over.
func (r *Reader) Finish() error {
	if r.err != nil {
		return r.err
	}
	if r.Remaining() != 0 {
		return &DecodeError{
			Kind:   MalformedPrimitive,
			Offset: r.pos,
			Field:  "end of file",
			Err:    errors.Wrapf(ErrTrailingData, "%d bytes", r.Remaining()),
		}
	}
	return nil
}
