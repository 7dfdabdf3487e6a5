package clientip

import "errors"

// ErrInvalidProxy is returned for trusted proxy entries that are neither an
// IP address nor a CIDR range.
var ErrInvalidProxy = errors.New("clientip: invalid trusted proxy")
