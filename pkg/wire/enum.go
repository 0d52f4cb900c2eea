package wire

import "strings"

// NormalizeEnum lower-cases s and maps hyphen and space separators to
// underscores, so "Prorate-Delay-Capture" and "prorate_delay_capture" match.
func NormalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// ParseEnum returns the member of known matching raw after normalisation.
// Unrecognised or empty input yields the zero value of E, which callers use as
// their Unknown member.
func ParseEnum[E ~string](raw string, known ...E) E {
	want := NormalizeEnum(raw)
	if want == "" {
		return E("")
	}

	for _, k := range known {
		if NormalizeEnum(string(k)) == want {
			return k
		}
	}

	return E("")
}
