// Package life implements Conway's Game of Life on a toroidal grid.
//
// A Universe owns a fixed-size, row-major cell buffer and advances one
// synchronous generation per Tick. The package does the simulation only:
// hosts own the loop, choose the pace, and pick how to present each
// generation, with Render as the plain-text form. Named seed patterns
// live in a small registry so hosts can select them by name.
package life
