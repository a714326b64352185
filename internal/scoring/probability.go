package scoring

// WinProbability is the live heuristic shown during a chase. It is a banded
// rule of thumb, not a model.
type WinProbability struct {
	ChasingPct      int     `json:"chasing_pct"`
	DefendingPct    int     `json:"defending_pct"`
	Target          int     `json:"target"`
	RunsNeeded      int     `json:"runs_needed"`
	BallsRemaining  int     `json:"balls_remaining"`
	RequiredRunRate float64 `json:"required_run_rate"`
}

// LiveWinProbability evaluates the chase of first by second over totalOvers.
func LiveWinProbability(first, second InningsScore, totalOvers int) WinProbability {
	wp := WinProbability{Target: first.Runs + 1}
	wp.RunsNeeded = wp.Target - second.Runs
	wp.BallsRemaining = totalOvers*BallsPerOver - second.LegalBalls

	if wp.RunsNeeded <= 0 {
		wp.ChasingPct, wp.DefendingPct = 100, 0
		return wp
	}
	if wp.BallsRemaining <= 0 {
		wp.ChasingPct, wp.DefendingPct = 0, 100
		return wp
	}

	wp.RequiredRunRate = float64(wp.RunsNeeded) / (float64(wp.BallsRemaining) / BallsPerOver)

	pct := bandForRate(wp.RequiredRunRate)
	switch {
	case second.Wickets >= 8:
		pct -= 30
	case second.Wickets >= 6:
		pct -= 15
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	wp.ChasingPct = pct
	wp.DefendingPct = 100 - pct
	return wp
}

func bandForRate(rrr float64) int {
	switch {
	case rrr > 12:
		return 10
	case rrr > 10:
		return 20
	case rrr > 8:
		return 35
	case rrr > 6:
		return 60
	default:
		return 80
	}
}
