// CheckersPlay - a checkers game built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"checkersplay/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("CheckersPlay")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
