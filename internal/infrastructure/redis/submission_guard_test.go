package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestKey_DependeDelCuerpoYDelScope(t *testing.T) {
	a := Key("/api/shipment:PDA01", []byte(`{"items":[1]}`))
	b := Key("/api/shipment:PDA01", []byte(`{"items":[1]}`))
	c := Key("/api/shipment:PDA01", []byte(`{"items":[2]}`))
	d := Key("/api/outsourcing:PDA01", []byte(`{"items":[1]}`))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.True(t, strings.HasPrefix(a, "mes:submit:/api/shipment:PDA01:"))
}

func TestClaim_RedisCaidoNoBloquea(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	g := NewSubmissionGuard(client, time.Second, zerolog.Nop())
	defer g.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, g.Claim(ctx, "/api/shipment:PDA01", []byte("{}")))
}
