/*
Package domain contains the core domain models for the Grappling Chainz engine.

It defines the fundamental entities of the position ontology: Positions,
Transitions between them, and DrillPrescriptions earned along the way.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Position: A named grappling state (e.g. closed guard) a session can occupy.
  - Transition: A directed, probability-weighted action connecting two positions.
  - DrillPrescription: A named practice exercise with repetitions and focus points.
  - DecisionQuality: A closed four-value classification of a transition's choice.
*/
package domain
