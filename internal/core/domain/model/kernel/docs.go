// Package kernel holds the primitives shared by every warehouse aggregate:
// UUID identifiers, non-negative decimal Quantity values and the Operator recorded
// on ledger mutations.
package kernel
