//go:build !ebiten

package app

import (
	"fmt"

	"github.com/gilhooleyd/wasm-game-of-life/internal/config"
)

// Run always reports that the GUI build tag is missing.
func Run(*config.Config) error {
	return fmt.Errorf("the gui command requires building with the 'ebiten' tag")
}
