package level

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vascocosta/glulands/internal/gamedata"
	"github.com/vascocosta/glulands/internal/telemetry"
)

// Source produces the data for a level index.
type Source interface {
	Load(ctx context.Context, index int) (*Data, error)
}

// Loader serves authored levels in order, then generated ones.
type Loader struct {
	levels *gamedata.LevelRegistry
	seed   int64
}

// NewLoader creates a loader over the authored levels. The seed drives every
// generated level past the last authored one.
func NewLoader(levels *gamedata.LevelRegistry, seed int64) *Loader {
	return &Loader{levels: levels, seed: seed}
}

// Load returns the level at index.
func (l *Loader) Load(ctx context.Context, index int) (*Data, error) {
	ctx, span := telemetry.Tracer("level").Start(ctx, "level.load")
	defer span.End()
	span.SetAttributes(attribute.Int("level.index", index))

	if index < 0 {
		err := fmt.Errorf("%w: index %d", ErrLevelNotFound, index)
		span.RecordError(err)
		return nil, err
	}

	var (
		d   *Data
		err error
	)
	if def := l.levels.GetByIndex(index); def != nil {
		d, err = FromDef(def, index)
	} else {
		d, err = Generate(ctx, index, l.seed)
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load level %d: %w", index, err)
	}

	span.SetAttributes(
		attribute.String("level.name", d.Name),
		attribute.Bool("level.procedural", d.Procedural),
	)
	return d, nil
}
