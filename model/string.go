package model

// OsuString is a string field of the legacy database formats. The wire format
// tells an absent string (tag 0x00) apart from a present empty one (0x0b 0x00).
type OsuString struct {
	Value   string
	Present bool
}

func Some(value string) OsuString {
	return OsuString{Value: value, Present: true}
}

func None() OsuString {
	return OsuString{}
}

func (s OsuString) IsEmpty() bool {
	return !s.Present || s.Value == ""
}

func (s OsuString) String() string {
	return s.Value
}

// Or returns the value, or fallback when the string is absent or empty.
func (s OsuString) Or(fallback string) string {
	if s.IsEmpty() {
		return fallback
	}
	return s.Value
}
