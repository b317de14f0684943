package messaging

import (
	"fmt"
	"log"

	"github.com/matst80/slask-inventory/pkg/common/jsoncompat"
	"github.com/matst80/slask-inventory/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	if err = ch.QueueBind(q.Name, name, name, false, nil); err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, filter func(amqp.Delivery) error) error {
	fc, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func(msgs <-chan amqp.Delivery) {
		defer ch.Close()
		for d := range msgs {
			consume(d, filter)
		}
	}(fc)
	return nil
}

// consume acks handled messages and drops the ones the filter rejects, a bad
// payload must not stop the listener.
func consume(d amqp.Delivery, filter func(amqp.Delivery) error) {
	if err := filter(d); err != nil {
		log.Printf("Error processing message: %v", err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

// DecodeRecords reads a vehicles_changed payload: a JSON array of records.
func DecodeRecords(body []byte) ([]types.VehicleRecord, error) {
	records := make([]types.VehicleRecord, 0)
	if err := jsoncompat.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", VehiclesChanged, err)
	}
	return records, nil
}

// RecordsFilter turns vehicles_changed deliveries into handler calls.
func RecordsFilter(handlers ...RecordHandler) func(amqp.Delivery) error {
	return func(d amqp.Delivery) error {
		records, err := DecodeRecords(d.Body)
		if err != nil {
			return err
		}
		log.Printf("Got %d records from %s", len(records), VehiclesChanged)
		for _, h := range handlers {
			h.HandleRecords(records)
		}
		return nil
	}
}

func ListenForRecords(ch *amqp.Channel, prefix string, handlers ...RecordHandler) error {
	return ListenToTopic(ch, prefix, VehiclesChanged, RecordsFilter(handlers...))
}
