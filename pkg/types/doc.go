// Package types defines the history record, the Plugin capability,
// configuration, and the standard error values shared by every plugcalc
// component.
package types
