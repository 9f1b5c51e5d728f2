// Package order provides the driver-side view of a group food order and the
// delivery workflow it moves through.
//
// The package includes:
//   - Order: the aggregate restored from the backend payload
//   - Status: the three-state delivery workflow with its transition rules
//   - Stop: a pickup or delivery point (area, address, optional coordinates)
//   - Region: the fixed set of areas the order list can be filtered by
//
// Key business rules:
//   - Status follows READY_FOR_DELIVERY -> ON_DELIVERY -> DELIVERED and never moves backward
//   - DELIVERED is terminal; no transition leaves it
//   - A transition is only applied once the backend acknowledged it (see NextStatus)
//   - Orders are read models: the client never creates them, it restores them
package order
