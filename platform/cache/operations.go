package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

// HINCRBYALL queues one HINCRBY per field and sends them in a single
// MULTI/EXEC round trip.
func HINCRBYALL(key string, fields map[string]int, conn *redis.Conn) error {
	if len(fields) == 0 {
		return nil
	}
	if err := (*conn).Send("MULTI"); err != nil {
		return err
	}
	for field, n := range fields {
		if err := (*conn).Send("HINCRBY", key, field, n); err != nil {
			return err
		}
	}
	_, err := (*conn).Do("EXEC")
	return err
}

func HGETALL(key string, conn *redis.Conn) (map[string]int, error) {
	res, err := redis.IntMap((*conn).Do("HGETALL", key))
	if err != nil {
		return map[string]int{}, err
	}
	return res, nil
}
