// Package display renders a DiffPlan for humans. All formatters are pure:
// they take a plan and return a string, performing no filesystem or terminal
// I/O themselves. The CLI decides where the output goes and whether color is
// appropriate.
package display
