package sjs

// State is a node's position in the march. Nodes progress monotonically
// FAR → TRIAL → VALID; they never regress. BOUNDARY marks the single
// ring of padding nodes surrounding the grid and is never promoted.
type State int

const (
	// Far marks a node never yet touched by an update.
	Far State = iota
	// Trial marks a node in the heap, a candidate for acceptance.
	Trial
	// Valid marks a frozen, accepted node.
	Valid
	// Boundary marks a padding node: never in the heap, never VALID.
	Boundary
)

// String renders a State for diagnostics and test failure messages.
func (st State) String() string {
	switch st {
	case Far:
		return "FAR"
	case Trial:
		return "TRIAL"
	case Valid:
		return "VALID"
	case Boundary:
		return "BOUNDARY"
	default:
		return "UNKNOWN"
	}
}

// Jet is the per-node value and derivative tuple: travel time and its
// first and mixed second partials, all in physical units.
type Jet struct {
	F, Fx, Fy, Fxy float64
}

// Unfactored marks a node outside any source's factored region.
const Unfactored = -1

// Warning reports a numerical condition the solver recovered from --
// currently, only root-finder non-convergence during a triangle update.
// The worst-case consequence is a slightly suboptimal travel time at
// (X, Y), which later updates only ever improve.
type Warning struct {
	X, Y    float64
	Message string
}

// Options configures a Solver. Use the With... constructors rather than
// constructing Options directly.
type Options struct {
	warnSink          func(Warning)
	rootFinderMaxIter int
}

// Option configures a Solver at construction time.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		warnSink:          func(Warning) {},
		rootFinderMaxIter: 100,
	}
}

// WithWarningSink installs a callback the solver reports numerical
// warnings through. The default sink discards warnings.
func WithWarningSink(fn func(Warning)) Option {
	return func(o *Options) { o.warnSink = fn }
}

// WithRootFinderMaxIter overrides the triangle-update root finder's
// iteration cap. Once exceeded, the finder clamps to the best endpoint
// seen and reports a Warning rather than looping indefinitely.
func WithRootFinderMaxIter(n int) Option {
	return func(o *Options) { o.rootFinderMaxIter = n }
}
