package domain

import (
	"errors"
	"fmt"
)

// Reason tags why a bulletin was not turned into a record.
type Reason string

const (
	ReasonFilteredGeography Reason = "filtered_geography"
	ReasonFilteredEvent     Reason = "filtered_event"
	ReasonFilteredOffice    Reason = "filtered_office"
	ReasonSuppressedMsgType Reason = "suppressed_msg_type"
	ReasonUnknownCategory   Reason = "unknown_category"
	ReasonParseError        Reason = "parse_error"
)

// Rejection signals that a bulletin must not be forwarded. Policy rejections
// and parse failures share this type; Reason tells them apart.
type Rejection struct {
	Reason Reason
	Detail string
}

func (r *Rejection) Error() string {
	if r.Detail == "" {
		return fmt.Sprintf("bulletin rejected: %s", r.Reason)
	}
	return fmt.Sprintf("bulletin rejected: %s: %s", r.Reason, r.Detail)
}

func reject(reason Reason, detail string) error {
	return &Rejection{Reason: reason, Detail: detail}
}

// AsRejection reports whether err carries a Rejection and returns it.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
