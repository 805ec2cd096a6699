// Package models defines the domain models for Fairs.
//
// # Models
//
//   - Group: one bill-splitting session (a dinner, a trip) owning its items,
//     people and tip configuration
//   - Item: a priced line on the bill with an integer quantity multiplier
//   - Person: a participant with the set of items (and optionally the tip)
//     they share
//   - TipSpec: the raw tip text plus whether it is an amount or a percentage
//   - ScannedItem: a receipt parser candidate awaiting review
//
// # Design Principles
//
// 1. **Decimal money**: prices are decimal.Decimal, never float64
// 2. **ID references**: people reference items by ID; the reserved TipRef
// marks a share of the tip
// 3. **Value snapshots**: the allocation engine receives a Group by value and
// never mutates it; mutation happens through the Group methods in this
// package, owned by the service layer
//
// # Dangling references
//
// DeleteItem removes the deleted ID from every person's selections. Groups
// loaded from older data may still hold stale IDs; the allocation engine
// treats those as contributing nothing.
package models
