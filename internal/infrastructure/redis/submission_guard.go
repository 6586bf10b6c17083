// Package redis guardia contra el doble envío del mismo lote desde un PDA.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mes-pda-api/internal/domain"
	"github.com/jhoicas/mes-pda-api/pkg/config"
)

const keyPrefix = "mes:submit"

// SubmissionGuard toma un lock con TTL por lote; el lock no se libera, expira solo.
// Mientras vive, el mismo cuerpo enviado al mismo endpoint se rechaza.
type SubmissionGuard struct {
	client *goredis.Client
	locker *redislock.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewClient cliente Redis a partir de la configuración.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: 20,
	})
}

// NewSubmissionGuard construye el guardia sobre un cliente ya creado.
func NewSubmissionGuard(client *goredis.Client, ttl time.Duration, log zerolog.Logger) *SubmissionGuard {
	return &SubmissionGuard{
		client: client,
		locker: redislock.New(client),
		ttl:    ttl,
		log:    log.With().Str("component", "submission_guard").Logger(),
	}
}

// Key clave del lote: scope (ruta + usuario) más el hash del cuerpo.
func Key(scope string, body []byte) string {
	sum := sha256.Sum256(body)
	return fmt.Sprintf("%s:%s:%s", keyPrefix, scope, hex.EncodeToString(sum[:]))
}

// Claim devuelve domain.ErrDuplicateSubmission si el lote ya se envió dentro del TTL.
// Si Redis no responde se deja pasar el lote: el libro de inventario no depende del guardia.
func (g *SubmissionGuard) Claim(ctx context.Context, scope string, body []byte) error {
	key := Key(scope, body)
	_, err := g.locker.Obtain(ctx, key, g.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return domain.ErrDuplicateSubmission
	}
	if err != nil {
		g.log.Warn().Err(err).Str("key", key).Msg("redis no disponible; lote sin guardia")
	}
	return nil
}

// Ping verifica la conexión (arranque).
func (g *SubmissionGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (g *SubmissionGuard) Close() error {
	return g.client.Close()
}
