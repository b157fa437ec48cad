package redis_test

import (
	"testing"

	"careerday/config"
	"careerday/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	opts := redis.Options(config.RedisNode{Host: "cache", Port: "6380", Password: "secret", DB: 2})

	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}
