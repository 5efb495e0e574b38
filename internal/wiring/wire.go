//go:build wireinject

package wiring

import "github.com/google/wire"

// InitializeApp builds the fully-wired App for the given config file
// path. Run `go generate ./internal/wiring` after changing the
// provider set to regenerate wire_gen.go.
func InitializeApp(configPath string) (*App, error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideEngine,
		ProvideGenerator,
		ProvideEvaluator,
		ProvideRoller,
		NewApp,
	)
	return nil, nil
}
