package entity

import (
	"bytes"
	"strconv"
	"strings"
)

// FlexString accepts both JSON strings and JSON numbers, keeping the exact
// textual value. Shopify sends order ids as 64-bit integers that can exceed
// float64 precision and monetary amounts as decimal strings, while older
// payloads and webhook replays sometimes carry either form. Empty means the
// field was absent from the payload.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = FlexString(unquoted)
		return nil
	}
	*f = FlexString(data)
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(f))), nil
}

func (f FlexString) String() string {
	return string(f)
}

// IsZero reports whether the field was absent or blank in the payload.
func (f FlexString) IsZero() bool {
	return strings.TrimSpace(string(f)) == ""
}

// Float parses the value as a number, returning 0 for absent or
// unparseable input. A literal "0" is a present zero, not an absence.
func (f FlexString) Float() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(f)), 64)
	if err != nil {
		return 0
	}
	return v
}
