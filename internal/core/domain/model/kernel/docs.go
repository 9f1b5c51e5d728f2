// Package kernel provides core domain primitives shared by the driver domain model.
//
// The package includes:
//   - Coordinates: a latitude/longitude pair validated against geographic bounds
//   - Email: an address that passed the basic shape check applied before login and signup
//
// Both are immutable value objects guarded against zero-value use; construct them
// through NewCoordinates and NewEmail.
package kernel
