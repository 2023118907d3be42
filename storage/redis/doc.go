// Package redis provides a Redis-backed implementation of
// storage.CacheRepository for deployments where several engine instances
// share one suggestion cache.
package redis
