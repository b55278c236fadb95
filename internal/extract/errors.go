package extract

import "errors"

// ErrUnknownEncoding is returned by NewDecoder when the encoding name is
// not a known IANA character set.
var ErrUnknownEncoding = errors.New("unknown character encoding")
