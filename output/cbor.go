package output

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBOR writes the document as RFC 8949 CBOR using fxamacker/cbor with Core
// Deterministic encoding, so identical batches produce identical bytes.
// The zero value is NOT ready to use; construct with NewCBOR.
type CBOR struct {
	enc cbor.EncMode
}

var _ Encoder = CBOR{}

func NewCBOR() (CBOR, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em}, nil
}

func (c CBOR) Encode(w io.Writer, keys []string) error {
	b, err := c.enc.Marshal(document{CDKeys: keys})
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
