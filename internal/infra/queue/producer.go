package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type LeadCreatedPayload struct {
	ID      int64  `json:"id"`
	FName   string `json:"fname"`
	LName   string `json:"lname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Zipcode string `json:"zipcode"`
}

type RabbitMQProducer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCreated(ctx context.Context, lead *entity.Lead) error {
	payload := LeadCreatedPayload{
		ID:      lead.ID,
		FName:   lead.FName,
		LName:   lead.LName,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Zipcode: lead.Zipcode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling lead payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing lead event: %w", err)
	}

	return nil
}
