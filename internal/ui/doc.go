// Package ui is the terminal front end of the dashboard, built on Bubble Tea.
//
// Layout, top to bottom:
//   - header: title, view preset buttons and a UTC clock
//   - map section: the world map with a resize handle underneath
//   - panel grid: news, market, prediction and monitor panels
//   - status line
//
// Modals (settings, monitor editor, confirmations, refresh log) stack on
// top in an OverlayStack and receive input first. SPC opens a leader menu
// of grouped commands.
package ui
