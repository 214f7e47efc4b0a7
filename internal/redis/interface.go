package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository depends on. Single
// node, cluster and sentinel clients all satisfy it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of a missing key
const Nil = redis.Nil
