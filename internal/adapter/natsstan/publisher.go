package natsstan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"

	"github.com/example/sneaker-cart-service/internal/domain"
)

var ErrNotConnected = errors.New("stan: not connected")

// Publisher публикует чеки подтверждённых покупок в STAN.
// Соединение живёт до отмены контекста, переданного в Connect.
type Publisher struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string

	sc stan.Conn
}

func (p *Publisher) Connect(ctx context.Context) error {
	clientID := p.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("cart-svc-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(p.ClusterID, clientID, stan.NatsURL(p.URL))
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	p.sc = sc
	return nil
}

func (p *Publisher) Publish(_ context.Context, r domain.Receipt) error {
	if p.sc == nil {
		return ErrNotConnected
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.sc.Publish(p.Subject, payload)
}

var _ domain.ReceiptPublisher = (*Publisher)(nil)
