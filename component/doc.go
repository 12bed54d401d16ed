// Package component implements the component object-composition pattern
// for game entities: an Entity owns one swappable behavior component per
// capability (input, physics, graphics) and delegates to them in a fixed
// order once per frame. Variants of a capability are interchangeable at
// construction time, so a player-controlled and an autonomous entity
// differ only in which input component they were composed with.
package component
