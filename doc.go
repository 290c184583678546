/*
Package chainz is a drill-through narrative engine for grappling training.

It models a directed graph of positions connected by probability-weighted
transitions, and drives interactive sessions that walk the graph: the user
occupies a position, picks an action, sees the likely opponent reaction,
and earns drill prescriptions along the way.

The core follows a Hexagonal Architecture: the pure domain (positions,
transitions, drills), the graph store, and the session walk are free of
I/O, while hosts such as the bundled CLI, the HTTP adapter, and the MCP
adapter drive them through the Engine facade.

# Usage

	package main

	import (
		"log"
		"os"

		chainz "github.com/kje7713-dev/Grappling-Chainz"
		"github.com/kje7713-dev/Grappling-Chainz/pkg/adapters/curriculum"
	)

	func main() {
		doc, err := curriculum.LoadFile("curriculum.yaml")
		if err != nil {
			log.Fatal(err)
		}

		eng := chainz.NewEngine(curriculum.BuildGraph(doc))

		r := chainz.NewRunner(os.Stdin, os.Stdout)
		if err := r.Run(eng, chainz.DefaultStartPosition); err != nil {
			log.Fatal(err)
		}
	}

Sessions can also be driven step by step:

	sess := eng.StartSession("closed_guard")
	for {
		actions := sess.AvailableActions()
		if len(actions) == 0 {
			break // terminal position
		}
		res, err := sess.TakeAction(actions[0])
		_ = res
		_ = err
	}
*/
package chainz
