// Package wiring assembles the dice roller CLI's dependency graph:
// configuration, logger, number-generation engine, and the logged
// roller built on top of them.
package wiring

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/forgeweave/diceroller/internal/config"
	"github.com/forgeweave/diceroller/internal/dice"
	"github.com/forgeweave/diceroller/internal/observability"
)

// App bundles the fully-wired components cmd/diceroller needs.
type App struct {
	Config config.DefaultsConfig
	Logger *zap.Logger
	Roller *dice.LoggedRoller
}

// ProvideConfig loads the DefaultsConfig from path.
func ProvideConfig(path string) (config.DefaultsConfig, error) {
	return config.Load(path)
}

// ProvideLogger builds a *zap.Logger from cfg.Logging.
func ProvideLogger(cfg config.DefaultsConfig) (*zap.Logger, error) {
	return observability.NewLogger(cfg.Logging)
}

// ProvideEngine selects the dice.Engine named by cfg.Engine.Kind.
func ProvideEngine(cfg config.DefaultsConfig) (dice.Engine, error) {
	switch cfg.Engine.Kind {
	case "math":
		return dice.NewMathEngine(), nil
	case "crypto":
		return dice.NewCryptoEngine(), nil
	case "mt19937":
		return dice.NewMT19937Engine(), nil
	default:
		return nil, fmt.Errorf("wiring: unknown engine kind %q", cfg.Engine.Kind)
	}
}

// ProvideGenerator wraps engine in a *dice.Generator.
func ProvideGenerator(engine dice.Engine) (*dice.Generator, error) {
	return dice.NewGenerator(engine)
}

// ProvideEvaluator returns a fresh *dice.Evaluator.
func ProvideEvaluator() *dice.Evaluator {
	return dice.NewEvaluator()
}

// ProvideRoller assembles the LoggedRoller from the generator,
// evaluator, and logger nodes of the graph.
func ProvideRoller(gen *dice.Generator, eval *dice.Evaluator, logger *zap.Logger) (*dice.LoggedRoller, error) {
	return dice.NewLoggedRoller(gen, eval, logger)
}

// NewApp assembles the final App from its wired components.
func NewApp(cfg config.DefaultsConfig, logger *zap.Logger, roller *dice.LoggedRoller) *App {
	return &App{Config: cfg, Logger: logger, Roller: roller}
}
