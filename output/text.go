package output

import (
	"bufio"
	"io"
)

// Text writes one key per line, newline-terminated, no metadata.
type Text struct{}

func (Text) Encode(w io.Writer, keys []string) error {
	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := bw.WriteString(k); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
