package redis

import "time"

// DefaultConnectTimeout bounds the initial connection ping.
const DefaultConnectTimeout = 5 * time.Second
