// seed asegura la organización por defecto (matriz y filiales) y, opcionalmente,
// importa clientes desde un CSV con columnas name,contact,email.
//
// Uso: go run ./cmd/seed [-clients clientes.csv] [-latin1]
// Usa la misma configuración que la API (DB_DRIVER, DATABASE_URL, BOOTSTRAP_*).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/holding-tracker/internal/application/usecase"
	"github.com/jhoicas/holding-tracker/internal/domain"
	"github.com/jhoicas/holding-tracker/internal/domain/repository"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/holding-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/holding-tracker/pkg/config"
	"github.com/jhoicas/holding-tracker/pkg/logger"
)

func main() {
	clientsPath := flag.String("clients", "", "CSV de clientes (name,contact,email)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-seed"})
	ctx := context.Background()

	var store repository.Store
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("DB_DRIVER=memory: el seed no persiste nada")
		store = memory.NewStore()
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		store = postgres.NewStore(pool)
	}

	bootstrapUC := usecase.NewBootstrapUseCase(store, usecase.BootstrapNames{
		Parent:       cfg.Bootstrap.ParentName,
		Subsidiaries: cfg.Bootstrap.Subsidiaries,
	}, log.Named("bootstrap"))
	org, err := bootstrapUC.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap")
	}
	fmt.Printf("Matriz %q (id %d, creada: %t)\n", org.Parent.Name, org.Parent.ID, org.ParentCreated)
	for _, s := range org.Subsidiaries {
		fmt.Printf("  Filial %q (id %d, creada: %t)\n", s.Name, s.ID, s.Created)
	}

	if *clientsPath == "" {
		return
	}
	f, err := os.Open(*clientsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV de clientes")
	}
	defer f.Close()

	rows, err := readClients(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV de clientes")
	}

	clientUC := usecase.NewClientUseCase(store, log.Named("client"))
	var created, skipped int
	for _, in := range rows {
		if _, err := clientUC.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("name", in.Name).Msg("crear cliente")
		}
		created++
	}
	fmt.Printf("Clientes: %d creados, %d ya existían\n", created, skipped)
}
