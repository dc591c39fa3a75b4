package selector

import "fmt"

// Scope says whether an action operates on the highlighted item or on the
// list as a whole. Global actions stay available when the filtered view
// is empty and their handlers receive the zero item value.
type Scope int

const (
	ScopeItem Scope = iota
	ScopeGlobal
)

// Action is one operation offered on the action row.
type Action[T any] struct {
	// Key is a short unique identifier within its scope ("checkout",
	// "delete"). Callers switch on it when interpreting the result.
	Key         string
	Label       string
	Description string
	Scope       Scope
	// ExitAfterExec finalizes the invocation when the handler succeeds;
	// otherwise the selector returns to browsing with the list re-ranked.
	ExitAfterExec bool
	// Handler may be nil, in which case accepting the action succeeds
	// immediately and the caller acts on the returned Action instead.
	Handler func(T) Outcome[T]
}

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeCanceled
)

// Outcome is what an action handler reports back. A Failure may carry a
// follow-up action (e.g. a force variant) that is offered for the same
// item without restarting the list.
type Outcome[T any] struct {
	Kind     OutcomeKind
	Message  string
	FollowUp *Action[T]
}

func Success[T any](msg string) Outcome[T] {
	return Outcome[T]{Kind: OutcomeSuccess, Message: msg}
}

func Failure[T any](msg string) Outcome[T] {
	return Outcome[T]{Kind: OutcomeFailure, Message: msg}
}

func FailureWithFollowUp[T any](msg string, followUp Action[T]) Outcome[T] {
	return Outcome[T]{Kind: OutcomeFailure, Message: msg, FollowUp: &followUp}
}

func Canceled[T any](msg string) Outcome[T] {
	return Outcome[T]{Kind: OutcomeCanceled, Message: msg}
}

// actionSet resolves which actions are offered for a given selection.
// Follow-up actions injected after failures are keyed by the item's
// original index so they stick to that item for the rest of the
// invocation.
type actionSet[T any] struct {
	static    []Action[T]
	factory   func(T) []Action[T]
	followUps map[int][]Action[T]
}

func newActionSet[T any](static []Action[T], factory func(T) []Action[T]) actionSet[T] {
	return actionSet[T]{
		static:    static,
		factory:   factory,
		followUps: make(map[int][]Action[T]),
	}
}

// available returns the actions for the item at original index idx, or
// only the global ones when idx < 0 (empty filtered view). Item-scoped
// actions come from the factory when one is set, else from the static
// list; injected follow-ups come after them, globals last.
func (s *actionSet[T]) available(idx int, item T) []Action[T] {
	var out []Action[T]
	if idx >= 0 {
		if s.factory != nil {
			out = append(out, s.factory(item)...)
		} else {
			for _, a := range s.static {
				if a.Scope == ScopeItem {
					out = append(out, a)
				}
			}
		}
		out = append(out, s.followUps[idx]...)
	}
	for _, a := range s.static {
		if a.Scope == ScopeGlobal {
			out = append(out, a)
		}
	}
	return out
}

func (s *actionSet[T]) inject(idx int, a Action[T]) {
	for _, existing := range s.followUps[idx] {
		if existing.Key == a.Key {
			return
		}
	}
	s.followUps[idx] = append(s.followUps[idx], a)
}

// invoke runs a handler, converting a panic into a Failure so a buggy
// handler cannot unwind the whole selector loop.
func invoke[T any](a Action[T], item T) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[T](fmt.Sprintf("%s: %v", a.Label, r))
		}
	}()
	if a.Handler == nil {
		return Success[T]("")
	}
	return a.Handler(item)
}
