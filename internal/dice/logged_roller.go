package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// LoggedRoller wraps a Generator/Evaluator pair with a zap.Logger,
// logging every roll at debug level with its notation, total, and
// rendered output.
type LoggedRoller struct {
	generator *Generator
	evaluator *Evaluator
	logger    *zap.Logger
}

// NewLoggedRoller constructs a LoggedRoller.
//
// Precondition: gen, eval, and logger must all be non-nil.
func NewLoggedRoller(gen *Generator, eval *Evaluator, logger *zap.Logger) (*LoggedRoller, error) {
	if gen == nil || eval == nil || logger == nil {
		return nil, fmt.Errorf("dice: NewLoggedRoller: %w: generator, evaluator, and logger must all be non-nil", ErrInvalidArgument)
	}
	return &LoggedRoller{generator: gen, evaluator: eval, logger: logger}, nil
}

// Roll parses and rolls notation, logging the outcome at debug level
// with the notation, total, and rendered output.
func (r *LoggedRoller) Roll(notation string) (*DiceRoll, error) {
	d, err := NewDiceRoll(notation, r.generator, r.evaluator)
	if err != nil {
		r.logger.Debug("dice roll parse failed", zap.String("notation", notation), zap.Error(err))
		return nil, err
	}
	if _, err := d.Roll(); err != nil {
		r.logger.Debug("dice roll failed", zap.String("notation", notation), zap.Error(err))
		return nil, err
	}
	if r.logger.Core().Enabled(zap.DebugLevel) {
		total, err := d.Total()
		if err != nil {
			return nil, err
		}
		output, err := d.Output()
		if err != nil {
			return nil, err
		}
		r.logger.Debug("dice roll",
			zap.String("notation", notation),
			zap.Float64("total", total),
			zap.String("output", output),
		)
	}
	return d, nil
}
