package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStation is returned when an endpoint is not part of the network.
	ErrUnknownStation = errors.New("planner: unknown station")

	// ErrNoPath is returned when both endpoints exist but are not connected.
	ErrNoPath = errors.New("planner: no path between stations")
)

// Display messages shown to riders.
const (
	MessageSameStation    = "أنت بالفعل في المحطة المطلوبة."
	MessageNoPath         = "❌ لا يوجد مسار بين المحطتين."
	messageUnknownStation = "❓ المحطة غير معروفة: %s"
	messageUnexpected     = "⚠️ تعذر حساب المسار."
)

// UnknownStationError names the station that could not be resolved.
type UnknownStationError struct {
	Name string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("planner: unknown station %q", e.Name)
}

func (e *UnknownStationError) Unwrap() error {
	return ErrUnknownStation
}

// Message converts a planning error into the text shown to a rider.
func Message(err error) string {
	var unknown *UnknownStationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &unknown):
		return fmt.Sprintf(messageUnknownStation, unknown.Name)
	case errors.Is(err, ErrNoPath):
		return MessageNoPath
	default:
		return messageUnexpected
	}
}
