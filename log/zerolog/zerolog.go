// Package zerolog adapts a zerolog.Logger to the cdkeygen progress/advisory
// sink.
package zerolog

import (
	"github.com/rs/zerolog"
	"github.com/unkn0wn-root/cdkeygen"
)

type Logger struct{ L zerolog.Logger }

var _ cdkeygen.Logger = Logger{}

func (z Logger) Debug(msg string, f cdkeygen.Fields) { z.L.Debug().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Info(msg string, f cdkeygen.Fields)  { z.L.Info().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Warn(msg string, f cdkeygen.Fields)  { z.L.Warn().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Error(msg string, f cdkeygen.Fields) { z.L.Error().Fields(map[string]any(f)).Msg(msg) }
