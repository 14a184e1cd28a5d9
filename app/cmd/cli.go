package cmd

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/configs"
	"github.com/Rakhulsr/go-marketplace/app/db/seeders"
	"github.com/Rakhulsr/go-marketplace/app/messaging"
	"github.com/Rakhulsr/go-marketplace/app/models/migrations"
	"github.com/Rakhulsr/go-marketplace/app/routes"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Name:   "marketplace",
		Usage:  "Multi-vendor marketplace API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Create the admin account and the default categories",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "demo", Usage: "also create a demo seller with fake products"},
					&cli.IntFlag{Name: "products", Value: 12, Usage: "number of demo products"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					opts := seeders.Options{
						AdminEmail:    configs.LoadENV.AdminEmail,
						AdminPassword: configs.LoadENV.AdminPassword,
						Demo:          c.Bool("demo"),
						DemoProducts:  int(c.Int("products")),
					}
					if err := seeders.DBSeed(db, opts); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-secret",
				Usage: "Generate a new JWT signing secret for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateAndPrintJWTSecret()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, c *cli.Command) error {
	env := configs.LoadENV

	db, err := configs.OpenConnection()
	if err != nil {
		return err
	}
	log.Println("✅ Database connected.")

	infra := routes.Infra{Env: env, Midtrans: configs.NewMidtransClients(env)}

	if env.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(ctx, env.RedisAddr, env.RedisPassword, env.RedisDB)
		if err != nil {
			log.Printf("Redis unavailable, catalog cache disabled: %v", err)
		} else {
			defer rdb.Close()
			infra.Cache = cache.NewRedisCatalogCache(rdb, time.Duration(env.CatalogCacheTTL)*time.Second)
			log.Println("✅ Redis catalog cache enabled.")
		}
	}

	if len(env.KafkaBrokers) > 0 {
		infra.Publisher = messaging.NewKafkaPublisher(env.KafkaBrokers)
		if closer, ok := infra.Publisher.(io.Closer); ok {
			defer closer.Close()
		}
		log.Printf("✅ Kafka publisher enabled (%v).", env.KafkaBrokers)
	}

	router, err := routes.NewRouter(db, infra)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              env.Port,
		Handler:           routes.WithServerMiddleware(router, env),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 Server starting on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
