package game

// Evaluator is an immutable snapshot that scores one search node
// without walking the full state.
type Evaluator[C Cost] interface {
	Evaluate() C
}

// Push receives one proposed child during expansion: the action that
// reaches it, its evaluator and hash (computed incrementally from the
// parent's, without applying the action), and whether it is terminal.
type Push[A comparable, E any, H Hash] func(action A, eval E, hash H, finished bool)

// BeamState is the capability beam search needs. The engine owns the
// state exclusively: Apply and Rollback must be exact inverses, and
// Expand must enumerate children of the currently applied state using
// only the parent eval/hash it is handed. Implementations must not
// retain the push callback across calls.
type BeamState[A comparable, C Cost, E Evaluator[C], H Hash] interface {
	// MakeInitialNode describes the root node before any action.
	MakeInitialNode() (E, H)
	Expand(eval E, hash H, push Push[A, E, H])
	Apply(action A)
	Rollback(action A)
}

// GameState is the capability the minimax and alpha-beta drivers need.
// Evaluate scores the position for the side to move; the drivers play
// negamax, so the sign flips on every ply.
type GameState[A comparable, C Cost] interface {
	Expand(push func(action A))
	IsFinished() bool
	Evaluate() C
	Apply(action A)
	Rollback(action A)
}

// ClimbState is a state that improves itself one step at a time.
type ClimbState interface {
	Update()
}

// AnnealState is a state that perturbs itself under an acceptance
// threshold. delta is temp*ln(u) for a uniform u; the state applies it
// to its own cost difference. progress runs from 0 to 1 over the budget.
type AnnealState interface {
	Update(delta, progress float64)
}
