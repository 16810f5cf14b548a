package osudb

import (
	"encoding/binary"
	"math"
	"time"

	. "github.com/MingxuanGame/OsuDB/model"
	"github.com/pkg/errors"
)

// Writer is the inverse of Reader. Like Reader it keeps the first error.
type Writer struct {
	buf []byte
	err error
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(field string, err error) {
	if w.err == nil {
		w.err = &EncodeError{Field: field, Err: err}
	}
}

func (w *Writer) Byte(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) Bool(v bool) {
	if v {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
}

func (w *Writer) Uint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Uint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (w *Writer) Float64(v float64) {
	w.Uint64(math.Float64bits(v))
}

func (w *Writer) Raw(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *Writer) Uleb128(v uint64) {
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
}

func (w *Writer) String(s OsuString) {
	if !s.Present {
		w.Byte(stringAbsent)
		return
	}
	w.Byte(stringPresent)
	w.Uleb128(uint64(len(s.Value)))
	w.buf = append(w.buf, s.Value...)
}

func (w *Writer) DateTime(field string, t time.Time) {
	ticks, err := timeToTicks(t)
	if err != nil {
		w.fail(field, err)
		return
	}
	w.Uint64(ticks)
}

func timeToTicks(t time.Time) (uint64, error) {
	t = t.UTC()
	if t.Before(windowsEpoch) {
		return 0, errors.Wrapf(ErrInvalidValue, "%s is before 0001-01-01", t)
	}
	seconds := uint64(t.Unix() - windowsEpoch.Unix())
	fraction := uint64(t.Nanosecond() / 100)
	if seconds > math.MaxUint64/ticksPerSecond || seconds*ticksPerSecond > math.MaxUint64-fraction {
		return 0, errors.Wrapf(ErrInvalidValue, "%s does not fit in 64-bit ticks", t)
	}
	return seconds*ticksPerSecond + fraction, nil
}

func (w *Writer) Mods(m Mods) {
	w.Uint32(uint32(m))
}

func (w *Writer) GameplayMode(field string, m GameplayMode) {
	if !m.Valid() {
		w.fail(field, errors.Wrapf(ErrInvalidValue, "gameplay mode %d", uint8(m)))
		return
	}
	w.Byte(uint8(m))
}

func (w *Writer) RankedStatus(field string, s RankedStatus) {
	if !s.Valid() {
		w.fail(field, errors.Wrapf(ErrInvalidValue, "ranked status %d", uint8(s)))
		return
	}
	w.Byte(uint8(s))
}

func (w *Writer) Count(field string, n int) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		w.fail(field, errors.Wrapf(ErrInvalidValue, "%d elements", n))
		return
	}
	w.Uint32(uint32(n))
}
