// seed carga maestros de ítems y almacenes desde los CSV que exporta el ERP
// (codificados en EUC-KR) hacia pmi100 y pmw100.
//
// Uso: go run ./cmd/seed items|warehouses ruta.csv [utf8]
// Por defecto el archivo se decodifica como EUC-KR; "utf8" lo lee tal cual.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/mes-pda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mes-pda-api/pkg/config"
	"github.com/jhoicas/mes-pda-api/pkg/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed items|warehouses archivo.csv [utf8]")
		os.Exit(2)
	}
	kind, path := os.Args[1], os.Args[2]
	eucKR := !(len(os.Args) > 3 && os.Args[3] == "utf8")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("abrir CSV")
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var n int
	switch kind {
	case "items":
		items, perr := parseItems(decoded(f, eucKR), time.Now())
		if perr != nil {
			log.Fatal().Err(perr).Msg("leer ítems")
		}
		repo := postgres.NewItemRepository(pool)
		for _, it := range items {
			if err := repo.Upsert(ctx, it); err != nil {
				log.Fatal().Err(err).Str("item_code", it.ItemCode).Msg("upsert ítem")
			}
		}
		n = len(items)
	case "warehouses":
		whs, perr := parseWarehouses(decoded(f, eucKR))
		if perr != nil {
			log.Fatal().Err(perr).Msg("leer almacenes")
		}
		repo := postgres.NewMasterRepository(pool)
		for _, w := range whs {
			if err := repo.UpsertWarehouse(ctx, w); err != nil {
				log.Fatal().Err(err).Str("whs_code", w.WhsCode).Msg("upsert almacén")
			}
		}
		n = len(whs)
	default:
		log.Fatal().Str("kind", kind).Msg("tipo desconocido (items|warehouses)")
	}

	log.Info().Str("kind", kind).Int("rows", n).Msg("carga terminada")
}
