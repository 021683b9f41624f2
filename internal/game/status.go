package game

import (
	"errors"
	"fmt"
)

var ErrUnknownStatus = errors.New("unknown game status")

// Status is the lifecycle state a game record reports. The server assigns it;
// a record never moves itself between states.
type Status string

const (
	StatusNew       Status = "new"
	StatusOngoing   Status = "ongoing"
	StatusFinished  Status = "finished"
	StatusAbandoned Status = "abandoned"
)

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusOngoing, StatusFinished, StatusAbandoned:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
