// Package provider supplies the driver for a new game.
//
// RandomUserProvider asks the public randomuser.me service for a profile and
// reads results[0].name.first, results[0].name.last and results[0].email from
// the response. Any failure (timeout, transport error, bad status, malformed
// or incomplete payload) is logged and absorbed: the caller always receives a
// usable Driver from the configured Fallback.
//
// Two fallback strategies exist: StaticFallback returns one fixed test
// identity, PoolFallback builds a random name from a built-in list.
// FallbackProvider uses a Fallback directly and never touches the network.
package provider
