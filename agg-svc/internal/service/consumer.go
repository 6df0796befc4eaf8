package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"tablescout/agg-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Printf("Starting aggregation consumer on topic %s...", c.Reader.Config().Topic)
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *Consumer) ProcessEvent(event domain.Event) {
	switch event.Type {
	case "new_review":
		log.Printf("Processing review: RestaurantID=%d, Rating=%d", event.RestaurantID, event.Rating)
		if err := c.Store.UpdateRestaurantRating(event.RestaurantID); err != nil {
			log.Printf("Error updating restaurant rating: %v", err)
			return
		}
	case "new_booking":
		day := event.Date
		if day == "" {
			day = event.Timestamp.Format("2006-01-02")
		}
		log.Printf("Processing booking: RestaurantID=%d, Date=%s", event.RestaurantID, day)
		if err := c.Store.RecordBooking(event.RestaurantID, day); err != nil {
			log.Printf("Error recording booking: %v", err)
			return
		}
	default:
		return
	}

	log.Printf("Successfully processed %s for restaurant %d", event.Type, event.RestaurantID)
}
