package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/example/sneaker-cart-service/internal/adapter/cache"
	"github.com/example/sneaker-cart-service/internal/adapter/httpapi"
	"github.com/example/sneaker-cart-service/internal/adapter/natsstan"
	"github.com/example/sneaker-cart-service/internal/adapter/repo"
	"github.com/example/sneaker-cart-service/internal/adapter/rules"
	"github.com/example/sneaker-cart-service/internal/adapter/seed"
	"github.com/example/sneaker-cart-service/internal/config"
	"github.com/example/sneaker-cart-service/internal/domain"
	"github.com/example/sneaker-cart-service/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	items, err := seed.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	catalog := domain.NewCatalogStore(items)
	cart := domain.NewCartLedger()

	pack := rules.DefaultPack()
	if cfg.CouponRulesPath != "" {
		if pack, err = rules.LoadPack(cfg.CouponRulesPath); err != nil {
			log.Fatalf("load coupon rules: %v", err)
		}
	}
	coupons := rules.NewEvaluator(pack)

	var snapshots domain.SnapshotRepository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer pool.Close()
		if err := repo.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("init schema: %v", err)
		}
		snapshots = repo.NewPostgresSnapshotRepo(pool, cfg.SnapshotSlot)
	} else {
		log.Printf("no DATABASE_URL, cart snapshots kept in memory")
		snapshots = cache.NewMemorySnapshotStore(cfg.SnapshotSlot)
	}

	restore := usecase.RestoreCart{Catalog: catalog, Cart: cart, Snapshots: snapshots}
	if err := restore.Execute(ctx); err != nil {
		log.Fatalf("restore cart: %v", err)
	}

	var receipts domain.ReceiptPublisher
	if cfg.NATSURL != "" {
		pub := &natsstan.Publisher{
			ClusterID: cfg.StanClusterID,
			ClientID:  cfg.StanClientID,
			URL:       cfg.NATSURL,
			Subject:   cfg.ReceiptSubject,
		}
		if err := pub.Connect(ctx); err != nil {
			// чеки не критичны, магазин работает и без потока
			log.Printf("stan connect: %v", err)
		} else {
			receipts = pub
		}
	}

	preview := usecase.PreviewCheckout{Cart: cart, Coupons: coupons, StandardShippingCost: cfg.StandardShippingCost}
	srv := httpapi.NewServer(catalog, cart,
		usecase.AddToCart{Catalog: catalog, Cart: cart, Snapshots: snapshots},
		usecase.CancelCheckout{Catalog: catalog, Cart: cart, Snapshots: snapshots},
		preview,
		usecase.ConfirmCheckout{Preview: preview, Cart: cart, Snapshots: snapshots, Receipts: receipts},
	)

	httpSrv := &http.Server{Addr: ":" + cfg.Port, Handler: srv.Router}
	go func() {
		log.Printf("http listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpSrv.Shutdown(shutdownCtx)
}
