package main

import (
	"flag"
	"log"

	"github.com/YuujiKamura/tohu-advertise/internal/advertise"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var seed int64
	var enemies int

	flag.Int64Var(&seed, "seed", 42, "RNG seed for the session")
	flag.IntVar(&enemies, "enemies", 4, "number of homing enemies")
	flag.Parse()

	cfg := advertise.DefaultConfig()
	ebiten.SetWindowTitle("Advertise Mode")
	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	if err := ebiten.RunGame(advertise.NewView(cfg, seed, enemies)); err != nil {
		log.Fatal(err)
	}
}
