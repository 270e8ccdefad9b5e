// Package ops binds every client method to an async.Op with a fixed
// argument and result type. Each binding is an independent instance:
// collection fetchers start with an empty slice so list screens can
// range over Data before the first load, single-entity fetchers and
// mutations start with nil.
package ops
