package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// New собирает логгер для одного запуска: консольный вывод или JSON,
// уровень по имени ("debug", "info", ...), поле run с идентификатором запуска.
func New(w io.Writer, level string, json bool) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if s := strings.TrimSpace(level); s != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("неизвестный уровень логирования %q: %w", level, err)
		}
		lvl = l
	}

	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if !json {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger(), nil
}
