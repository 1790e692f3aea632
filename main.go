package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"fishing/internal/config"
	"fishing/internal/session"
)

func main() {
	log.SetPrefix("fishing: ")

	// 1. Settings
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Debug {
		log.Printf("surface %dx%d, seed %d", cfg.Width, cfg.Height, seed)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)

	// 3. Initialize Game
	game := NewGame(cfg, session.Options{Rand: rand.New(rand.NewSource(seed))})

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
