package dephase

// Numeric constants fixed by the design. All must be reproduced
// exactly; see original_source/Analysis/BaseCaller/DPTreephaser.cpp for the
// ground truth these were distilled from.
const (
	kMaxPathDelay       = 40   // deactivate paths more than this many flows behind the leader
	kExtendThreshold    = 1.0  // max penalty gap from the best child to still keep a sibling
	kDotThreshold       = 0.3  // weak-signal threshold for dot_counter bookkeeping
	kNegativeMultiplier = 2    // weight on under-prediction residuals in penalty
	deletionSentinel    = 25   // penalty value marking a child for certain deletion
	keepThreshold       = 20   // penalty must be strictly below this to survive
	upperBoundSentinel  = 1e20 // initial sum_of_squares_upper_bound

	defaultWindowSize    = 50  // NormalizeAndSolve3/5 windowed-normalization window
	step1RestartLookback = 100 // NormalizeAndSolve5 restart lookback at each step
	shortReadCutoff      = 10  // restart_flows - this = short-read exit cutoff
	sequenceLengthSlack  = 10  // hard cap on sequence length is 2F - this

	legacyIterations     = 7  // NormalizeAndSolve4 iteration count
	legacyFlowStep       = 20 // NormalizeAndSolve4 solve_flow increment per iteration
	legacyFlowBase       = 100
	legacyNormalizeWidth = 20 // NormalizeAndSolve4's Normalize start flow
)
