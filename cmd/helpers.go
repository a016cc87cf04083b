package cmd

import (
	"fmt"

	"github.com/pathforge/rolefit/internal/catalog"
	"github.com/pathforge/rolefit/internal/config"
	"github.com/pathforge/rolefit/internal/engine"
	"github.com/pathforge/rolefit/internal/readiness"
)

// loadAgent loads configuration and the catalog, then constructs the engine.
// A missing or malformed catalog is fatal here: nothing downstream can run
// without it.
func loadAgent() (*config.Config, *engine.Agent, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Paths...)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading catalog: %w", err)
	}

	agent := engine.New(cat,
		engine.WithTopN(cfg.TopN),
		engine.WithRawSkillLevel(cfg.RawLevel),
		engine.WithWeights(readiness.Weights{
			Must:       cfg.Weights.Must,
			NiceToHave: cfg.Weights.NiceToHave,
		}),
	)
	return cfg, agent, nil
}
