package game

import "testing"

func TestPlayer_ReceiveAndClear(t *testing.T) {
	p := NewPlayer()
	for _, c := range hand("Ace", "9", "5") {
		p.ReceiveCard(c)
	}

	if p.Value() != 15 {
		t.Errorf("value %d, want 15", p.Value())
	}
	if p.Busted() {
		t.Error("15 reported as busted")
	}

	first, ok := p.FirstCard()
	if !ok || first.Face != "Ace" {
		t.Errorf("first card %v (%v), want the ace", first, ok)
	}

	p.AddWin()
	p.ClearHand()

	if len(p.Hand) != 0 {
		t.Errorf("hand not cleared: %v", p.Hand)
	}
	if _, ok := p.FirstCard(); ok {
		t.Error("empty hand has a first card")
	}
	if p.Wins != 1 {
		t.Errorf("wins %d after clearing the hand, want 1", p.Wins)
	}
}

func TestSeat_Next(t *testing.T) {
	if SeatHuman.Next() != SeatDealer || SeatDealer.Next() != SeatHuman {
		t.Fatal("seats do not alternate")
	}
}

func TestOutcome_Winner(t *testing.T) {
	tests := []struct {
		outcome Outcome
		winner  Seat
		ok      bool
	}{
		{OutcomeHumanBusted, SeatDealer, true},
		{OutcomeDealerBusted, SeatHuman, true},
		{OutcomeTie, 0, false},
		{OutcomeHumanHigher, SeatHuman, true},
		{OutcomeDealerHigher, SeatDealer, true},
	}

	for _, tt := range tests {
		winner, ok := tt.outcome.Winner()
		if ok != tt.ok || (ok && winner != tt.winner) {
			t.Errorf("%s: winner %s (%v), want %s (%v)", tt.outcome, winner, ok, tt.winner, tt.ok)
		}
	}
}
