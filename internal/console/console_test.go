package console

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"twentyone/internal/game"
)

func newTestTerminal(opts Options) (*Terminal, *bytes.Buffer, *[]time.Duration) {
	var out bytes.Buffer
	var slept []time.Duration
	term := NewTerminal(&out, opts)
	term.sleep = func(d time.Duration) { slept = append(slept, d) }
	return term, &out, &slept
}

func TestReadChoice_RepromptsOnInvalidInput(t *testing.T) {
	term, out, _ := newTestTerminal(Options{})
	p := NewPrompter(strings.NewReader("x\n3\nh\n"), term)

	action, err := p.HitOrStay()
	if err != nil {
		t.Fatalf("HitOrStay: %v", err)
	}
	if action != game.ActionHit {
		t.Errorf("got %s, want hit", action)
	}

	if n := strings.Count(out.String(), HitOrStayPrompt.Invalid); n != 2 {
		t.Errorf("expected 2 error messages, got %d", n)
	}
	if n := strings.Count(out.String(), HitOrStayPrompt.Text); n != 3 {
		t.Errorf("expected 3 prompts, got %d", n)
	}
}

func TestReadChoice_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  game.Action
	}{
		{"S\n", game.ActionStay},
		{"H\r\n", game.ActionHit},
		{"s", game.ActionStay},
	}

	for _, tt := range tests {
		term, _, _ := newTestTerminal(Options{})
		p := NewPrompter(strings.NewReader(tt.input), term)

		got, err := p.HitOrStay()
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestReadChoice_RejectsPadding(t *testing.T) {
	term, out, _ := newTestTerminal(Options{})
	p := NewPrompter(strings.NewReader(" y\nyes\nn\n"), term)

	again, err := p.PlayAgain()
	if err != nil {
		t.Fatalf("PlayAgain: %v", err)
	}
	if again {
		t.Error("expected no")
	}
	if n := strings.Count(out.String(), PlayAgainPrompt.Invalid); n != 2 {
		t.Errorf("expected 2 error messages, got %d", n)
	}
}

func TestPrompter_InputClosed(t *testing.T) {
	term, out, _ := newTestTerminal(Options{})
	p := NewPrompter(strings.NewReader("maybe"), term)

	_, err := p.PlayAgain()
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if n := strings.Count(out.String(), PlayAgainPrompt.Invalid); n != 1 {
		t.Errorf("expected 1 error message, got %d", n)
	}

	if err := p.Continue(); !errors.Is(err, ErrInputClosed) {
		t.Errorf("Continue after EOF: %v", err)
	}
}

func TestPrompter_ContinueIgnoresContent(t *testing.T) {
	term, out, _ := newTestTerminal(Options{ClearScreen: true})
	p := NewPrompter(strings.NewReader("anything at all\n"), term)

	if err := p.Continue(); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	if !strings.Contains(out.String(), continueText) {
		t.Error("missing continue prompt")
	}
	if !strings.HasSuffix(out.String(), clearSequence) {
		t.Error("screen not cleared after continue")
	}
}

func TestTerminal_Pauses(t *testing.T) {
	term, out, slept := newTestTerminal(Options{ShortPause: time.Second, LongPause: 2 * time.Second})

	term.Pause(PauseShort)
	term.Pause(PauseLong)
	term.ClearScreen()

	if len(*slept) != 2 || (*slept)[0] != time.Second || (*slept)[1] != 2*time.Second {
		t.Errorf("unexpected pauses %v", *slept)
	}
	if out.Len() != 0 {
		t.Errorf("clear screen wrote %q while disabled", out.String())
	}
}

func TestTerminal_ZeroPauseDoesNotSleep(t *testing.T) {
	term, _, slept := newTestTerminal(Options{})
	term.Pause(PauseLong)

	if len(*slept) != 0 {
		t.Errorf("slept %v", *slept)
	}
}

func TestView_RoundOver(t *testing.T) {
	tests := []struct {
		result game.RoundResult
		want   string
	}{
		{game.RoundResult{Outcome: game.OutcomeHumanBusted, HumanValue: 22, DealerValue: 18}, "You busted. Dealer wins!"},
		{game.RoundResult{Outcome: game.OutcomeDealerBusted, HumanValue: 20, DealerValue: 22}, "Dealer busted. You win!"},
		{game.RoundResult{Outcome: game.OutcomeTie, HumanValue: 19, DealerValue: 19}, "It's a tie. Both have 19"},
		{game.RoundResult{Outcome: game.OutcomeHumanHigher, HumanValue: 20, DealerValue: 18}, "You win! 20 beats 18"},
		{game.RoundResult{Outcome: game.OutcomeDealerHigher, HumanValue: 18, DealerValue: 20}, "Dealer wins! 20 beats 18"},
	}

	for _, tt := range tests {
		term, out, _ := newTestTerminal(Options{})
		r := tt.result
		r.HumanWins, r.DealerWins = 3, 4

		NewView(term).RoundOver(r)

		got := out.String()
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s: output %q missing %q", r.Outcome, got, tt.want)
		}
		if !strings.Contains(got, "=>    You: 3\n=> Dealer: 4\n") {
			t.Errorf("%s: score lines missing from %q", r.Outcome, got)
		}
	}
}

func TestView_InitialDealHidesDealerHand(t *testing.T) {
	term, out, _ := newTestTerminal(Options{})
	dealerFirst := game.NewCard("Queen", "Clubs")
	human := []game.Card{game.NewCard("Ace", "Spades"), game.NewCard("9", "Hearts")}

	NewView(term).InitialDeal(dealerFirst, human)

	want := "Dealer's first card is Queen of Clubs\n\n" +
		"You have the following cards:\n\n" +
		"Ace of Spades\n9 of Hearts\n= 20\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestGame_PlaysThroughConsole(t *testing.T) {
	// enter, stay, then blank lines for any dealer hits; blank answers to
	// the replay prompt are rejected until "n"
	script := "\n" + "s\n" + strings.Repeat("\n", 12) + "n\n"

	term, out, _ := newTestTerminal(Options{})
	prompter := NewPrompter(strings.NewReader(script), term)
	deck := game.NewDeck(rand.New(rand.NewSource(21)))
	g := game.New(deck, prompter, NewView(term))

	if err := g.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Welcome to Twenty-one",
		"Would you like to hit or stay? (h/s)",
		"You stayed with",
		"The current score is",
		"Thank you for playing Twenty-One! Goodbye",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if g.Human().Wins+g.Dealer().Wins > 1 {
		t.Errorf("one round scored %d wins", g.Human().Wins+g.Dealer().Wins)
	}
}
