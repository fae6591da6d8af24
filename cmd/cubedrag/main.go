// cubedrag - Interactive Rubik's Cube with face-to-face drag gestures.
package main

import (
	"github.com/SeamusWaldron/cubedrag/internal/cli"
)

func main() {
	cli.Execute()
}
