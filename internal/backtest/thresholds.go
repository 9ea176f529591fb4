package backtest

// Accuracy gates for a validation run. Break-even is the ATS rate at which
// flat betting clears standard -110 vig; the baseline is the documented
// accuracy of the shipped tuning; the target is the stretch goal a PASS
// requires.
const (
	BreakEvenAccuracy = 0.524
	BaselineAccuracy  = 0.529
	TargetAccuracy    = 0.542
)

// DefaultMinimumGames is the smallest corpus a run can be judged on.
// Anything below forces a FAIL regardless of measured accuracy.
const DefaultMinimumGames = 15
