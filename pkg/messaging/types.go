package messaging

import "github.com/matst80/slask-inventory/pkg/types"

type ChangeTopic string

const (
	VehiclesChanged ChangeTopic = "vehicles_changed"
	Tracking        ChangeTopic = "tracking"
)

// RecordHandler receives a complete replacement record set.
type RecordHandler interface {
	HandleRecords(records []types.VehicleRecord)
}

type RabbitConfig struct {
	Url    string
	Prefix string
}
