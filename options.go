package lottie

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// TrimMode overrides the simultaneous/individual mode of every trim path in a scene.
type TrimMode int

// Trim modes, TrimModeUnset keeps the mode from the document.
const (
	TrimModeUnset TrimMode = iota
	TrimModeSimultaneous
	TrimModeIndividual
)

// ParseTrimMode parses "simultaneous", "individual", or the empty string.
func ParseTrimMode(s string) (TrimMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TrimModeUnset, nil
	case "simultaneous":
		return TrimModeSimultaneous, nil
	case "individual":
		return TrimModeIndividual, nil
	}
	return TrimModeUnset, fmt.Errorf("unknown trim mode %q", s)
}

func (m TrimMode) String() string {
	switch m {
	case TrimModeSimultaneous:
		return "simultaneous"
	case TrimModeIndividual:
		return "individual"
	}
	return ""
}

// Decode implements envconfig.Decoder.
func (m *TrimMode) Decode(s string) error {
	mode, err := ParseTrimMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Options are the options for parsing and rendering a scene.
type Options struct {
	ForceTrimMode TrimMode
	Logger        *zap.Logger // nil discards all messages
}

// DefaultOptions are the default options.
var DefaultOptions = Options{}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
