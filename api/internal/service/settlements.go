package service

import (
	"context"
	"errors"
	"time"

	"payhub/api/internal/domain"
	"payhub/api/internal/infra/nats"
	"payhub/api/internal/logger"
	"payhub/pkg/nats/natsdomain"
	"payhub/pkg/utils"

	"github.com/nats-io/nats.go/jetstream"
	"gorm.io/gorm"
)

// SettlementsService consumes "sale reached paid state" notifications from
// the sale pipeline and drives the commission engine for wallet sales.
type SettlementsService struct {
	commissions Commissions

	c         jetstream.Consumer
	natsinfra *nats.NatsInfra
	l         logger.Logger
	db        *gorm.DB
}

func NewSettlementsService(db *gorm.DB, natsinfra *nats.NatsInfra, l logger.Logger, commissions Commissions) *SettlementsService {
	stream, err := nats.InitSalesStream(context.Background(), natsinfra.Js)
	if err != nil {
		panic(err)
	}

	c, err := stream.CreateOrUpdateConsumer(context.Background(), jetstream.ConsumerConfig{
		Durable:       "commission_settled",
		AckPolicy:     jetstream.AckExplicitPolicy,
		FilterSubject: natsdomain.SubjJsSaleSettled.String(),
	})
	if err != nil {
		panic("CreateOrUpdateConsumer error" + err.Error())
	}

	return &SettlementsService{db: db, natsinfra: natsinfra, c: c, commissions: commissions, l: l}
}

func (s *SettlementsService) StartWaitSettled() {
	const delay = time.Second * 10

	_, err := s.c.Consume(func(msg jetstream.Msg) {
		err := s.consumer(msg)
		if err != nil {
			msg.NakWithDelay(delay)
			return
		}
		msg.Ack()
	})

	if err != nil {
		s.l.TemplNatsError("Consume error", s.natsinfra.Nc.ConnectedUrl(), err)
		return
	}
}

// nil means ack. transient storage errors are the only reason to redeliver.
func (s *SettlementsService) consumer(msg jetstream.Msg) error {
	m, _ := msg.Metadata()
	if m != nil {
		if m.NumDelivered > 5 {
			s.l.Debug("Too many deliveries", "num", m.NumDelivered)
			return nil
		}
	}

	sale, err := utils.Unmarshal[natsdomain.SaleSettled](msg.Data())
	if err != nil {
		s.l.Debug("settlement unmarshal error", "error", err.Error())
		return nil // malformed, redelivery will not help
	}

	// only wallet sales carry a commission, and only once paid
	if sale.PaymentMethod != domain.PROVIDER_WALLET.ToString() || !sale.IsPaid() {
		return nil
	}

	_, err = s.commissions.Record(s.db, sale)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCommission) {
			return nil // duplicate notification, already recorded
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			s.l.TemplSettlementErr("settlement rejected", sale.SaleID, sale.StoreID, err)
			return nil
		}
		s.l.TemplSettlementErr("commission record failed", sale.SaleID, sale.StoreID, err)
		return err
	}

	return nil
}
