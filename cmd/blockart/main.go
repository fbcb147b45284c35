// Blockart - Minecraft map art from images
//
// Blockart reduces an image to a palette of block colours and prints the
// /fill and /setblock commands that rebuild it in game.
package main

import (
	"os"

	"github.com/jmylchreest/blockart/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
