package output

import (
	"encoding/json"
	"io"
)

// JSON writes a single object mapping "cd_keys" to the ordered key array,
// pretty-printed with two-space indentation.
type JSON struct{}

func (JSON) Encode(w io.Writer, keys []string) error {
	b, err := json.MarshalIndent(document{CDKeys: keys}, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
