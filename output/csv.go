package output

import (
	"encoding/csv"
	"io"
)

// CSV writes a cd_key header row, then one row per key with standard
// quoting.
type CSV struct{}

func (CSV) Encode(w io.Writer, keys []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"cd_key"}); err != nil {
		return err
	}
	for _, k := range keys {
		if err := cw.Write([]string{k}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
