package game

type Action int

const (
	ActionStay Action = iota
	ActionHit
)

func (a Action) String() string {
	if a == ActionHit {
		return "hit"
	}
	return "stay"
}

// Input is where the human's answers come from. Implementations keep
// asking until they get a valid answer; an error means no answer will ever
// come (closed input).
type Input interface {
	// Continue blocks until the human acknowledges a pause.
	Continue() error
	HitOrStay() (Action, error)
	PlayAgain() (bool, error)
}

type Policy interface {
	Decide(hand []Card) (Action, error)
}

// DealerPolicy hits until the hand is in the stay range or busted.
type DealerPolicy struct{}

func (DealerPolicy) Decide(hand []Card) (Action, error) {
	value := HandValue(hand)
	if value > BlackjackLimit || MustStay(value) {
		return ActionStay, nil
	}
	return ActionHit, nil
}

// HumanPolicy defers every decision to Input.
type HumanPolicy struct {
	Input Input
}

func (p HumanPolicy) Decide(_ []Card) (Action, error) {
	return p.Input.HitOrStay()
}
