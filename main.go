package main

import "reef/internal/game"

func main() {
	game.RunDesktop()
}
