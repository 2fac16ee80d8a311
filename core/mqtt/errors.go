package mqtt

import "errors"

// ErrNotConnected is returned when publishing on a client that lost its broker connection.
var ErrNotConnected = errors.New("mqtt client not connected")
