// Package layout models the dashboard's panel arrangement independently of
// any renderer.
//
// Core pieces:
//   - Settings: per-panel {name, enabled}, defaults merged with saved overrides
//   - MergeOrder: reconciles a saved panel order with the canonical one
//   - Order: the explicit ordered list of panel keys that renderers read from
//   - Drag: pointer-driven reordering of an Order by vertical midpoints
//   - Resizer: clamped height of the map section
package layout
