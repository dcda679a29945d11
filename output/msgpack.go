package output

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack writes the same document as JSON using vmihailenco/msgpack/v5.
// Compact; meant for another program, not a person. The zero value is ready
// to use.
type Msgpack struct{}

func (Msgpack) Encode(w io.Writer, keys []string) error {
	return msgpack.NewEncoder(w).Encode(document{CDKeys: keys})
}
