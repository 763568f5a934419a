package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"twentyone/internal/game"
)

var ErrInputClosed = errors.New("input closed")

const (
	ChoiceHit  = "h"
	ChoiceStay = "s"
	ChoiceYes  = "y"
	ChoiceNo   = "n"
)

type Prompt struct {
	Text    string
	Invalid string
	Options []string
}

var (
	HitOrStayPrompt = Prompt{
		Text:    "Would you like to hit or stay? (h/s)",
		Invalid: "Sorry, valid choices are 'h' for hit and 's' for stay",
		Options: []string{ChoiceHit, ChoiceStay},
	}

	PlayAgainPrompt = Prompt{
		Text:    "Would you like to play another round? (y/n)",
		Invalid: "Sorry, that is not a valid answer. Please answer 'y' or 'n'",
		Options: []string{ChoiceYes, ChoiceNo},
	}
)

const continueText = "press 'enter' to continue"

// Prompter reads the human's answers line by line. It implements
// game.Input.
type Prompter struct {
	term *Terminal
	in   *bufio.Reader
}

func NewPrompter(r io.Reader, term *Terminal) *Prompter {
	return &Prompter{
		term: term,
		in:   bufio.NewReader(r),
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		// a last line without a newline still counts
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadChoice asks until the answer (case-insensitive) is one of the
// prompt's options and returns it lowercased.
func (p *Prompter) ReadChoice(prompt Prompt) (string, error) {
	for {
		p.term.Blank()
		p.term.Println(prompt.Text)

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		answer := strings.ToLower(line)
		if slices.Contains(prompt.Options, answer) {
			return answer, nil
		}
		p.term.Println(prompt.Invalid)
	}
}

// Continue waits for any line, then clears the screen.
func (p *Prompter) Continue() error {
	p.term.Blank()
	p.term.Println(continueText)

	if _, err := p.readLine(); err != nil {
		return err
	}
	p.term.ClearScreen()
	return nil
}

func (p *Prompter) HitOrStay() (game.Action, error) {
	answer, err := p.ReadChoice(HitOrStayPrompt)
	if err != nil {
		return game.ActionStay, err
	}
	if answer == ChoiceHit {
		return game.ActionHit, nil
	}
	return game.ActionStay, nil
}

func (p *Prompter) PlayAgain() (bool, error) {
	p.term.Pause(PauseShort)

	answer, err := p.ReadChoice(PlayAgainPrompt)
	if err != nil {
		return false, err
	}
	return answer == ChoiceYes, nil
}
