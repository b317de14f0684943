package tracking

import (
	"context"
	"log"
	"net/http"

	"github.com/matst80/slask-inventory/pkg/messaging"
	"github.com/matst80/slask-inventory/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	eventSession    uint16 = 0
	eventView       uint16 = 1
	eventNavigation uint16 = 2
)

type RabbitTracking struct {
	node       string
	prefix     string
	connection *amqp.Connection
	publisher  messaging.Publisher
}

func NewRabbitTracking(url, prefix, node string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		node:   node,
		prefix: prefix,
	}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if err = messaging.DefineTopic(ch, t.prefix, messaging.Tracking); err != nil {
		ch.Close()
		return err
	}
	t.publisher = ch
	return nil
}

func (t *RabbitTracking) Close() error {
	if t.connection == nil {
		return nil
	}
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Publish(context.Background(), t.publisher, t.prefix, messaging.Tracking, data)
}

type BaseEvent struct {
	SessionId int    `json:"session_id"`
	Node      string `json:"node,omitempty"`
	Event     uint16 `json:"event"`
}

type Session struct {
	*BaseEvent
	UserAgent    string `json:"user_agent,omitempty"`
	Ip           string `json:"ip,omitempty"`
	Language     string `json:"language,omitempty"`
	PragmaHeader string `json:"pragma,omitempty"`
}

func clientIp(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}

func (rt *RabbitTracking) TrackSession(sessionId int, r *http.Request) {
	err := rt.send(Session{
		BaseEvent:    &BaseEvent{Event: eventSession, SessionId: sessionId, Node: rt.node},
		Language:     r.Header.Get("Accept-Language"),
		UserAgent:    r.UserAgent(),
		Ip:           clientIp(r),
		PragmaHeader: r.Header.Get("Pragma"),
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type ViewEventData struct {
	*types.FilterState
	*BaseEvent
	NumberOfResults int    `json:"noi"`
	Page            int    `json:"page"`
	Referer         string `json:"referer,omitempty"`
}

func (rt *RabbitTracking) TrackView(sessionId int, filters *types.FilterState, resultLen int, page int, r *http.Request) {
	err := rt.send(&ViewEventData{
		BaseEvent:       &BaseEvent{Event: eventView, SessionId: sessionId, Node: rt.node},
		FilterState:     filters,
		NumberOfResults: resultLen,
		Page:            page,
		Referer:         r.Header.Get("Referer"),
	})
	if err != nil {
		log.Println("Error sending view event: ", err)
	}
}

type NavigationEventData struct {
	*BaseEvent
	types.NavigationEvent
}

func (rt *RabbitTracking) TrackNavigation(sessionId int, event types.NavigationEvent) error {
	return rt.send(&NavigationEventData{
		BaseEvent:       &BaseEvent{Event: eventNavigation, SessionId: sessionId, Node: rt.node},
		NavigationEvent: event,
	})
}
