// Package chart renders a value series onto a fixed text-mode character
// grid for terminal display. The grid is ephemeral: it exists only for the
// duration of a render and is never persisted.
package chart
