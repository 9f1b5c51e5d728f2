// Package commands contains the driver's write operations: authentication, the
// environment switch and the order status workflow.
//
// Every command is built through its constructor (local validation happens there,
// before any network call) and executed by a handler that talks to the backend
// through ports.DeliveryAPI.
package commands
