package database

import (
	"context"
	"sort"
)

// Pinger is any backend that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CheckAll pings every backend and returns "ok" or the error text per name.
// The bool is false if any backend failed.
func CheckAll(ctx context.Context, backends map[string]Pinger) (map[string]string, bool) {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make(map[string]string, len(backends))
	healthy := true
	for _, name := range names {
		if err := backends[name].Ping(ctx); err != nil {
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}
	return status, healthy
}
