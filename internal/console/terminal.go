package console

import (
	"fmt"
	"io"
	"log"
	"time"
)

const clearSequence = "\033[H\033[2J"

type Pause int

const (
	PauseShort Pause = iota
	PauseLong
)

type Options struct {
	ClearScreen bool
	ShortPause  time.Duration
	LongPause   time.Duration
}

// Terminal is the only thing in the program that writes to the screen.
type Terminal struct {
	out   io.Writer
	opts  Options
	sleep func(time.Duration)
}

func NewTerminal(out io.Writer, opts Options) *Terminal {
	return &Terminal{
		out:   out,
		opts:  opts,
		sleep: time.Sleep,
	}
}

func (t *Terminal) write(s string) {
	if _, err := io.WriteString(t.out, s); err != nil {
		log.Printf("Failed to write output: %v", err)
	}
}

func (t *Terminal) ClearScreen() {
	if t.opts.ClearScreen {
		t.write(clearSequence)
	}
}

func (t *Terminal) Println(a ...any) {
	t.write(fmt.Sprintln(a...))
}

func (t *Terminal) Printf(format string, a ...any) {
	t.write(fmt.Sprintf(format, a...) + "\n")
}

func (t *Terminal) Blank() {
	t.write("\n")
}

func (t *Terminal) Pause(p Pause) {
	d := t.opts.ShortPause
	if p == PauseLong {
		d = t.opts.LongPause
	}
	if d > 0 {
		t.sleep(d)
	}
}
