// Package converters exports algotrace traces into the formats external
// renderers consume:
//   - TreeJSON:   karatsuba call tree as {nodes, edges} for flow-chart widgets
//   - StatesJSON: closest-pair snapshots for canvas players
//   - Mermaid:    karatsuba call tree as a Mermaid "graph TD" flowchart
//
// Converters only read results; they never re-run an algorithm.
package converters
