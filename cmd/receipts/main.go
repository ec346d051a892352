package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	stan "github.com/nats-io/stan.go"

	"github.com/example/sneaker-cart-service/internal/domain"
)

// Читает поток чеков и печатает подтверждённые покупки.
func main() {
	clusterID := getenv("STAN_CLUSTER_ID", "cart-cluster")
	clientID := getenv("STAN_SUB_ID", "receipt-viewer")
	natsURL := getenv("NATS_URL", "nats://localhost:4223")
	subject := getenv("RECEIPT_SUBJECT", "receipts")

	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer sc.Close()

	_, err = sc.Subscribe(subject, func(m *stan.Msg) {
		var r domain.Receipt
		if err := json.Unmarshal(m.Data, &r); err != nil {
			log.Printf("invalid receipt: %v", err)
			return
		}
		log.Printf("receipt %s: %d lines, discount %.2f, total %.2f",
			r.ReceiptID, len(r.Lines), r.Pricing.Discount, r.Pricing.Total)
	}, stan.DeliverAllAvailable())
	if err != nil {
		log.Fatalf("stan subscribe: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
