// Package output serializes generated key batches to files or streams.
// One encoder per format; formats are addressed by token so callers can pass
// them straight from a flag or form field.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format tokens accepted by For and Save.
const (
	FormatText = "text" // one key per line; "txt" is accepted as an alias
	FormatCSV  = "csv"  // header row cd_key, one row per key
	FormatJSON = "json" // {"cd_keys": [...]}, two-space indent

	// Extended formats for machine consumers. Same single-object document
	// as JSON, different wire encoding.
	FormatMsgpack = "msgpack"
	FormatCBOR    = "cbor"
)

// ErrUnsupportedFormat means the format token matched no known encoder.
var ErrUnsupportedFormat = errors.New("output: unsupported format")

// Encoder writes an ordered key batch to w.
type Encoder interface {
	Encode(w io.Writer, keys []string) error
}

// document is the single-object payload shared by the structured formats.
type document struct {
	CDKeys []string `json:"cd_keys" msgpack:"cd_keys" cbor:"cd_keys"`
}

// For resolves a format token to its encoder. Tokens are trimmed and
// lower-cased first. Unknown tokens fail with ErrUnsupportedFormat.
func For(format string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "txt":
		return Text{}, nil
	case FormatCSV:
		return CSV{}, nil
	case FormatJSON:
		return JSON{}, nil
	case FormatMsgpack:
		return Msgpack{}, nil
	case FormatCBOR:
		c, err := NewCBOR()
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q (use text, csv or json)", ErrUnsupportedFormat, format)
	}
}
