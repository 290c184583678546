package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Grappling Chainz.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Warm belt-rank gradient (white -> blue -> purple -> brown -> red)
	s1 := termenv.String("   ________          _            ").Foreground(p.Color("#e2e8f0"))
	s2 := termenv.String("  / ____/ /_  ____ _(_)___  ____  ").Foreground(p.Color("#93c5fd"))
	s3 := termenv.String(" / /   / __ \\/ __ `/ / __ \\/_  / ").Foreground(p.Color("#818cf8"))
	s4 := termenv.String("/ /___/ / / / /_/ / / / / / / /_  ").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String("\\____/_/ /_/\\__,_/_/_/ /_/ /___|").Foreground(p.Color("#b45309"))
	s6 := termenv.String(fmt.Sprintf("  grappling chainz %s", version)).Foreground(p.Color("#ef4444"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
