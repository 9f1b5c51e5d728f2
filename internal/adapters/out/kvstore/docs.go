// Package kvstore keeps the driver client's device-local state: the session
// record and the environment flag. The backing store is either a SQLite file
// or a Redis database; both satisfy ports.KeyValueStore.
package kvstore
