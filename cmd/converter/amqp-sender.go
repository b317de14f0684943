package main

import (
	"github.com/matst80/slask-inventory/pkg/messaging"
	"github.com/matst80/slask-inventory/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AmqpSender struct {
	Prefix     string
	connection *amqp.Connection
}

func NewAmqpSender(url, prefix string) (*AmqpSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	r := &AmqpSender{
		Prefix:     prefix,
		connection: conn,
	}
	if err = r.defineTopics(); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

// SendRecords replaces the record set on every server listening on the prefix.
func (s *AmqpSender) SendRecords(records []types.VehicleRecord) error {
	return messaging.SendChange(s.connection, s.Prefix, messaging.VehiclesChanged, records)
}

func (s *AmqpSender) defineTopics() error {
	ch, err := s.connection.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, s.Prefix, messaging.VehiclesChanged)
}

func (s *AmqpSender) Close() error {
	return s.connection.Close()
}
