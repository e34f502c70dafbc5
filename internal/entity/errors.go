package entity

import "errors"

var (
	errExactlyOnePayload = errors.New("exactly one of text, url or json must be set")
	errPayloadMismatch   = errors.New("payload does not match message type")
)
