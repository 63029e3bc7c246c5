//go:build nodebug
// +build nodebug

package debug

// GloballyEnabled is false when built with -tags nodebug, which reduces
// every gated call to a constant false branch.
const GloballyEnabled = false
