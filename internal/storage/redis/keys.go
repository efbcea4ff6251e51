package redis

import "fmt"

// namespacedKey returns the Redis key for a store key
func namespacedKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", namespace, key)
}
