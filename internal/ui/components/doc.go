// Package components renders merge traces and audit reports for the
// terminal.
//
// Components are built on lipgloss and styled through StyleFunc appliers
// that read colours from a Theme carried by RenderContext:
//
//	ctx := components.DefaultContext()
//	fmt.Println(components.NewTraceTable(trace).ViewWithContext(ctx))
//
// PlainTheme renders the same layout without escape sequences and is used
// whenever output is not a terminal.
package components
