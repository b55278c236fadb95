package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the character encoding used when none is configured.
const DefaultEncoding = "utf-8"

// Decoder turns raw file bytes into text using a fixed character encoding.
// Bytes that cannot be decoded are dropped; decoding never fails.
type Decoder struct {
	// name is the canonical IANA name of the encoding.
	name string

	// enc is nil for UTF-8, which is handled without a transformer.
	enc encoding.Encoding
}

// NewDecoder returns a Decoder for the named encoding.
// An empty name selects UTF-8. Names are looked up in the IANA registry,
// so aliases such as "latin1" or "cp1252" work.
func NewDecoder(name string) (*Decoder, error) {
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	canonical, err := ianaindex.MIME.Name(enc)
	if err != nil {
		canonical, err = ianaindex.IANA.Name(enc)
		if err != nil {
			canonical = name
		}
	}

	d := &Decoder{name: strings.ToLower(canonical)}
	if d.name != DefaultEncoding {
		d.enc = enc
	}
	return d, nil
}

// Name returns the canonical name of the encoding.
func (d *Decoder) Name() string {
	return d.name
}

// Decode converts data to a string, dropping undecodable bytes.
//
// Decoders substitute U+FFFD for bytes they cannot map. A U+FFFD is kept
// only when the encoding can represent it and the source bytes really
// encode it; substitutions are dropped.
func (d *Decoder) Decode(data []byte) string {
	if d.enc == nil {
		return strings.ToValidUTF8(string(data), "")
	}

	dec := d.enc.NewDecoder()
	var (
		sb  strings.Builder
		buf [utf8.UTFMax]byte
	)
	sb.Grow(len(data))

	// A destination of one rune's width keeps each chunk small enough to
	// tell which source bytes produced a U+FFFD.
	for src := data; len(src) > 0; {
		nDst, nSrc, err := dec.Transform(buf[:], src, true)
		sb.Write(d.dropSubstitutions(buf[:nDst], src[:nSrc]))
		src = src[nSrc:]

		if err == nil {
			break
		}
		if !errors.Is(err, transform.ErrShortDst) || (nDst == 0 && nSrc == 0) {
			sb.WriteString(strings.ToValidUTF8(string(src), ""))
			break
		}
	}
	return sb.String()
}

// dropSubstitutions removes U+FFFD from out unless out re-encodes to
// exactly the source bytes in.
func (d *Decoder) dropSubstitutions(out, in []byte) []byte {
	if !bytes.ContainsRune(out, utf8.RuneError) {
		return out
	}
	encoded, err := d.enc.NewEncoder().Bytes(out)
	if err == nil && bytes.Equal(encoded, in) {
		return out
	}
	return bytes.ReplaceAll(out, []byte(string(utf8.RuneError)), nil)
}

// ReadFile reads the file at path and decodes it.
func (d *Decoder) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from the directory walk
	if err != nil {
		return "", err
	}
	return d.Decode(data), nil
}
