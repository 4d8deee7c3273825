// Package pool holds the candidate walls a maze generator has not yet tried.
//
// Draw removes one uniformly chosen wall in O(1): the chosen slot is filled
// with the last element and the slice shrinks by one. The pool strictly shrinks
// by one element per Draw and never grows.
//
// Randomness is supplied by the caller on every Draw through the Source
// interface (satisfied by *rand.Rand), so a pool holds no random state of its
// own and two generators never share one.
package pool
