package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"log"
	"math/rand"
	"os"

	"twentyone/internal/config"
	"twentyone/internal/console"
	"twentyone/internal/database"
	"twentyone/internal/game"
	"twentyone/internal/history"
)

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			log.Fatalf("Failed to seed deck: %v", err)
		}
	}

	var opts []game.Option
	if cfg.History {
		db, err := database.New(database.MemoryPath)
		if err != nil {
			log.Printf("Warning: failed to open round history: %v", err)
			log.Println("Continuing without round history")
		} else {
			defer db.Close()
			opts = append(opts, game.WithLedger(history.NewRepository(db.DB)))
		}
	}

	term := console.NewTerminal(os.Stdout, console.Options{
		ClearScreen: cfg.ClearScreen,
		ShortPause:  cfg.ShortPause,
		LongPause:   cfg.LongPause,
	})

	deck := game.NewDeck(rand.New(rand.NewSource(seed)))
	g := game.New(deck, console.NewPrompter(os.Stdin, term), console.NewView(term), opts...)

	if err := g.Play(); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			return
		}
		log.Fatalf("Game aborted: %v", err)
	}
}
