// Package notify publishes judged transitions as JSON events to Redis so
// other services can react to lifecycle changes. RedisPublisher.Callback
// plugs the publisher into a transition rule as a success or error callback.
package notify
