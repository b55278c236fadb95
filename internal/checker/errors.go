package checker

import "errors"

// ErrInvalidProxyAddress is returned when the SOCKS5 proxy address is not
// in "host:port" format.
var ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
