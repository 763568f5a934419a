package console

import (
	"fmt"

	"twentyone/internal/game"
)

// View narrates the game on a Terminal. It implements game.View.
type View struct {
	term *Terminal
}

func NewView(term *Terminal) *View {
	return &View{term: term}
}

// ============== HANDS ==============

func (v *View) showHand(hand []game.Card) {
	for _, card := range hand {
		v.term.Println(card.String())
	}
	v.term.Printf("= %d", game.HandValue(hand))
}

func (v *View) showHumanHand(hand []game.Card) {
	v.term.Println("You have the following cards:")
	v.term.Pause(PauseShort)
	v.term.Blank()
	v.showHand(hand)
}

func (v *View) showDealerHand(hand []game.Card) {
	v.term.Pause(PauseShort)
	v.term.Println("Dealer has the following cards:")
	v.term.Blank()
	v.showHand(hand)
}

// ============== ROUND EVENTS ==============

func (v *View) Welcome() {
	v.term.ClearScreen()
	v.term.Println("Welcome to Twenty-one")
	v.term.Blank()
	v.term.Println("The player with the highest score without surpassing twenty-one wins!")
}

func (v *View) InitialDeal(dealerFirst game.Card, humanHand []game.Card) {
	v.term.ClearScreen()
	v.term.Printf("Dealer's first card is %s", dealerFirst)
	v.term.Blank()
	v.term.Pause(PauseShort)
	v.showHumanHand(humanHand)
}

func (v *View) HumanHits() {
	v.term.Blank()
	v.term.Println("You hit")
	v.term.Pause(PauseShort)
}

func (v *View) HumanDrew(card, dealerFirst game.Card, humanHand []game.Card) {
	v.term.ClearScreen()
	v.term.Printf("(Dealer's first card is %s)", dealerFirst)
	v.term.Blank()
	v.nextCard(card)
	v.showHumanHand(humanHand)
}

func (v *View) HumanStays(value int) {
	v.term.ClearScreen()
	v.term.Printf("You stayed with %d", value)
	v.term.Blank()
	v.term.Pause(PauseShort)
}

func (v *View) DealerTurn() {
	v.term.Println("Dealer's turn")
	v.term.Blank()
	v.term.Pause(PauseShort)
}

func (v *View) DealerHand(hand []game.Card) {
	v.showDealerHand(hand)
}

func (v *View) DealerHits() {
	v.term.Blank()
	v.term.Pause(PauseShort)
	v.term.Println("Dealer hits")
}

func (v *View) DealerDrew(card game.Card) {
	v.nextCard(card)
}

func (v *View) DealerStays(value int) {
	v.term.Blank()
	v.term.Pause(PauseShort)
	v.term.Printf("Dealer must stay with %d", value)
}

func (v *View) nextCard(card game.Card) {
	v.term.Printf("Next card is a %s", card)
	v.term.Blank()
	v.term.Pause(PauseShort)
}

// ============== RESULTS ==============

func outcomeText(r game.RoundResult) string {
	switch r.Outcome {
	case game.OutcomeHumanBusted:
		return "You busted. Dealer wins!"
	case game.OutcomeDealerBusted:
		return "Dealer busted. You win!"
	case game.OutcomeTie:
		return fmt.Sprintf("It's a tie. Both have %d", r.DealerValue)
	case game.OutcomeHumanHigher:
		return fmt.Sprintf("You win! %d beats %d", r.HumanValue, r.DealerValue)
	default:
		return fmt.Sprintf("Dealer wins! %d beats %d", r.DealerValue, r.HumanValue)
	}
}

func (v *View) RoundOver(r game.RoundResult) {
	v.term.Pause(PauseLong)
	v.term.Blank()
	v.term.Println(outcomeText(r))

	v.term.Blank()
	v.term.Println("The current score is")
	v.term.Printf("=>    You: %d", r.HumanWins)
	v.term.Printf("=> Dealer: %d", r.DealerWins)
}

func (v *View) NewRound() {
	v.term.ClearScreen()
	v.term.Println("New Round!")
	v.term.Blank()
	v.term.Pause(PauseShort)
	v.term.Println("Dealer shuffles and deals new cards...")
	v.term.Pause(PauseLong)
}

func (v *View) SessionSummary(s game.Summary) {
	v.term.Blank()
	v.term.Printf("Rounds played: %d (You %d, Dealer %d, Ties %d)",
		s.Rounds, s.HumanWins, s.DealerWins, s.Ties)
}

func (v *View) Goodbye() {
	v.term.Println("Thank you for playing Twenty-One! Goodbye")
}
