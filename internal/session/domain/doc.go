// Package domain models the session lifecycle state.
//
// The session moves between three mutually exclusive phases: idle (a
// game may exist but no warrior is on the map), map (a warrior/deck
// pair traverses the map), and battle (the pair's ownership has moved
// into a live battle). Representing the phases as a sealed variant
// makes the pairing and ownership-exchange invariants structural
// instead of runtime-checked.
package domain
