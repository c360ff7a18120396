package advertise

import "math/rand"

// ControllerInjector swaps the agent's steering policy for the strategy set
// while leaving the rest of the agent untouched: position, HP, cooldowns, and
// the strategy bookkeeping all survive the swap.
type ControllerInjector struct {
	cfg Config
	rng *rand.Rand
}

func NewControllerInjector(cfg Config, rng *rand.Rand) *ControllerInjector {
	return &ControllerInjector{cfg: cfg, rng: rng}
}

// Apply installs the strategy set on the agent. It is idempotent: an agent
// already running a strategy set keeps it, so timers and rotation state are
// never reset by a repeated injection.
func (ci *ControllerInjector) Apply(a *Agent) {
	if _, ok := a.Policy().(*StrategySet); ok {
		return
	}
	a.SetPolicy(NewStrategySet(ci.cfg, ci.rng))
}
