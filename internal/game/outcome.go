package game

type Seat int

const (
	SeatHuman Seat = iota
	SeatDealer
)

func (s Seat) Next() Seat {
	if s == SeatHuman {
		return SeatDealer
	}
	return SeatHuman
}

func (s Seat) String() string {
	if s == SeatDealer {
		return "dealer"
	}
	return "human"
}

type Outcome int

const (
	OutcomeHumanBusted Outcome = iota
	OutcomeDealerBusted
	OutcomeTie
	OutcomeHumanHigher
	OutcomeDealerHigher
)

var outcomeNames = map[Outcome]string{
	OutcomeHumanBusted:  "human_busted",
	OutcomeDealerBusted: "dealer_busted",
	OutcomeTie:          "tie",
	OutcomeHumanHigher:  "human_higher",
	OutcomeDealerHigher: "dealer_higher",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// Winner reports who takes the round. Ties have no winner.
func (o Outcome) Winner() (Seat, bool) {
	switch o {
	case OutcomeHumanBusted, OutcomeDealerHigher:
		return SeatDealer, true
	case OutcomeDealerBusted, OutcomeHumanHigher:
		return SeatHuman, true
	default:
		return 0, false
	}
}

// Resolve checks, in order: human bust, dealer bust, equal values, higher
// value. A busted human loses whatever the dealer holds.
func Resolve(human, dealer *Player) Outcome {
	switch {
	case human.Busted():
		return OutcomeHumanBusted
	case dealer.Busted():
		return OutcomeDealerBusted
	case human.Value() == dealer.Value():
		return OutcomeTie
	case human.Value() > dealer.Value():
		return OutcomeHumanHigher
	default:
		return OutcomeDealerHigher
	}
}

// RoundResult is what a finished round reports to the view and the ledger.
// Wins are the running totals after scoring.
type RoundResult struct {
	Round       int
	Outcome     Outcome
	HumanValue  int
	DealerValue int
	HumanWins   int
	DealerWins  int
}

type Summary struct {
	Rounds     int
	HumanWins  int
	DealerWins int
	Ties       int
}
