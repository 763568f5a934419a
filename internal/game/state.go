package game

import (
	"fmt"
	"log"
)

// View renders game events. The engine never formats text itself, and a
// View that ignores every call leaves outcomes unchanged.
type View interface {
	Welcome()
	InitialDeal(dealerFirst Card, humanHand []Card)
	HumanHits()
	HumanDrew(card, dealerFirst Card, humanHand []Card)
	HumanStays(value int)
	DealerTurn()
	DealerHand(hand []Card)
	DealerHits()
	DealerDrew(card Card)
	DealerStays(value int)
	RoundOver(result RoundResult)
	NewRound()
	SessionSummary(summary Summary)
	Goodbye()
}

// Ledger keeps finished rounds for the current session.
type Ledger interface {
	RecordRound(result RoundResult) error
	Summary() (Summary, error)
}

type Option func(*Game)

func WithLedger(l Ledger) Option {
	return func(g *Game) {
		g.ledger = l
	}
}

// Game owns the deck and both players and drives rounds from the deal to
// the score.
type Game struct {
	deck   *Deck
	human  *Player
	dealer *Player

	humanPolicy  Policy
	dealerPolicy Policy

	input  Input
	view   View
	ledger Ledger

	// only used to alternate the initial deal
	current Seat
	round   int
}

func New(deck *Deck, input Input, view View, opts ...Option) *Game {
	g := &Game{
		deck:         deck,
		human:        NewPlayer(),
		dealer:       NewPlayer(),
		humanPolicy:  HumanPolicy{Input: input},
		dealerPolicy: DealerPolicy{},
		input:        input,
		view:         view,
		current:      SeatHuman,
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Human() *Player  { return g.human }
func (g *Game) Dealer() *Player { return g.dealer }
func (g *Game) Deck() *Deck     { return g.deck }
func (g *Game) Round() int      { return g.round }

// Play runs rounds until the human declines another one.
func (g *Game) Play() error {
	g.view.Welcome()
	if err := g.input.Continue(); err != nil {
		return err
	}

	for {
		if _, err := g.PlayRound(); err != nil {
			return err
		}

		again, err := g.input.PlayAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}

		g.Reset()
		g.view.NewRound()
	}

	g.finish()
	return nil
}

func (g *Game) PlayRound() (Outcome, error) {
	g.round++

	if err := g.deal(); err != nil {
		return 0, err
	}

	dealerFirst, _ := g.dealer.FirstCard()
	g.view.InitialDeal(dealerFirst, g.human.Hand)

	if err := g.humanTurn(dealerFirst); err != nil {
		return 0, err
	}

	if !g.human.Busted() {
		if err := g.dealerTurn(); err != nil {
			return 0, err
		}
	}

	outcome := Resolve(g.human, g.dealer)
	g.score(outcome)

	result := RoundResult{
		Round:       g.round,
		Outcome:     outcome,
		HumanValue:  g.human.Value(),
		DealerValue: g.dealer.Value(),
		HumanWins:   g.human.Wins,
		DealerWins:  g.dealer.Wins,
	}

	if g.ledger != nil {
		if err := g.ledger.RecordRound(result); err != nil {
			log.Printf("Failed to record round %d: %v", g.round, err)
		}
	}

	g.view.RoundOver(result)
	return outcome, nil
}

// Reset empties both hands and brings back a full shuffled deck. Wins are
// kept.
func (g *Game) Reset() {
	g.human.ClearHand()
	g.dealer.ClearHand()
	g.current = SeatHuman
	g.deck.Reset()
}

func (g *Game) player(s Seat) *Player {
	if s == SeatDealer {
		return g.dealer
	}
	return g.human
}

// deal gives two cards each, alternating human, dealer, human, dealer.
func (g *Game) deal() error {
	for i := 0; i < 4; i++ {
		card, err := g.draw()
		if err != nil {
			return fmt.Errorf("deal to %s: %w", g.current, err)
		}
		g.player(g.current).ReceiveCard(card)
		g.current = g.current.Next()
	}
	return nil
}

func (g *Game) draw() (Card, error) {
	card, err := g.deck.Draw()
	if err != nil {
		return Card{}, fmt.Errorf("round %d: %w", g.round, err)
	}
	return card, nil
}

func (g *Game) humanTurn(dealerFirst Card) error {
	for {
		action, err := g.humanPolicy.Decide(g.human.Hand)
		if err != nil {
			return err
		}

		if action == ActionStay {
			g.view.HumanStays(g.human.Value())
			return nil
		}

		g.view.HumanHits()
		card, err := g.draw()
		if err != nil {
			return fmt.Errorf("human hit: %w", err)
		}
		g.human.ReceiveCard(card)
		g.view.HumanDrew(card, dealerFirst, g.human.Hand)

		if g.human.Busted() {
			return nil
		}
	}
}

func (g *Game) dealerTurn() error {
	g.view.DealerTurn()

	for {
		g.view.DealerHand(g.dealer.Hand)
		if g.dealer.Busted() {
			return nil
		}

		action, err := g.dealerPolicy.Decide(g.dealer.Hand)
		if err != nil {
			return err
		}
		if action == ActionStay {
			g.view.DealerStays(g.dealer.Value())
			return nil
		}

		g.view.DealerHits()
		if err := g.input.Continue(); err != nil {
			return err
		}
		g.view.HumanStays(g.human.Value())

		card, err := g.draw()
		if err != nil {
			return fmt.Errorf("dealer hit: %w", err)
		}
		g.dealer.ReceiveCard(card)
		g.view.DealerDrew(card)
	}
}

func (g *Game) score(o Outcome) {
	winner, ok := o.Winner()
	if !ok {
		return
	}
	g.player(winner).AddWin()
}

func (g *Game) finish() {
	if g.ledger != nil {
		summary, err := g.ledger.Summary()
		if err != nil {
			log.Printf("Failed to load session summary: %v", err)
		} else {
			g.view.SessionSummary(summary)
		}
	}
	g.view.Goodbye()
}
