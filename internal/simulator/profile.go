package simulator

import "fmt"

// Profile holds the outcome weights of a single delivery. Run weights are
// relative and normalised at sampling time.
type Profile struct {
	Dot    float64 `yaml:"dot"`
	Single float64 `yaml:"single"`
	Double float64 `yaml:"double"`
	Triple float64 `yaml:"triple"`
	Four   float64 `yaml:"four"`
	Six    float64 `yaml:"six"`

	WicketChance float64 `yaml:"wicket_chance"`
	WideChance   float64 `yaml:"wide_chance"`

	// Applied while the forced winner bats, inverted while it bowls.
	FavouredWicketFactor   float64 `yaml:"favoured_wicket_factor"`
	FavouredBoundaryFactor float64 `yaml:"favoured_boundary_factor"`
}

// DefaultProfile is a T20-ish scoring shape: roughly 7.5 an over and a
// wicket every 22 balls.
func DefaultProfile() Profile {
	return Profile{
		Dot:                    35,
		Single:                 35,
		Double:                 10,
		Triple:                 2,
		Four:                   12,
		Six:                    6,
		WicketChance:           0.045,
		WideChance:             0.03,
		FavouredWicketFactor:   0.4,
		FavouredBoundaryFactor: 1.8,
	}
}

// Validate rejects profiles the sampler cannot use.
func (p Profile) Validate() error {
	for name, w := range map[string]float64{
		"dot": p.Dot, "single": p.Single, "double": p.Double,
		"triple": p.Triple, "four": p.Four, "six": p.Six,
	} {
		if w < 0 {
			return fmt.Errorf("simulator profile: %s weight must not be negative", name)
		}
	}
	if p.Dot+p.Single+p.Double+p.Triple+p.Four+p.Six <= 0 {
		return fmt.Errorf("simulator profile: run weights sum to zero")
	}
	if p.WicketChance < 0 || p.WicketChance >= 1 {
		return fmt.Errorf("simulator profile: wicket_chance must be in [0,1)")
	}
	if p.WideChance < 0 || p.WideChance >= 1 {
		return fmt.Errorf("simulator profile: wide_chance must be in [0,1)")
	}
	if p.FavouredWicketFactor <= 0 || p.FavouredBoundaryFactor <= 0 {
		return fmt.Errorf("simulator profile: favoured factors must be positive")
	}
	return nil
}

// outcome is one sampled run value with its weight.
type outcome struct {
	runs   int
	weight float64
}

// weights returns the run distribution for a batting side. bias is +1 when
// the forced winner bats, -1 when it bowls, 0 otherwise.
func (p Profile) weights(bias int) ([]outcome, float64) {
	boundary := 1.0
	wicket := p.WicketChance
	switch bias {
	case 1:
		boundary = p.FavouredBoundaryFactor
		wicket *= p.FavouredWicketFactor
	case -1:
		boundary = 1 / p.FavouredBoundaryFactor
		wicket /= p.FavouredWicketFactor
	}
	if wicket > 0.9 {
		wicket = 0.9
	}
	return []outcome{
		{0, p.Dot},
		{1, p.Single},
		{2, p.Double},
		{3, p.Triple},
		{4, p.Four * boundary},
		{6, p.Six * boundary},
	}, wicket
}
