package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/matst80/slask-inventory/pkg/common"
	"github.com/matst80/slask-inventory/pkg/index"
	"github.com/matst80/slask-inventory/pkg/messaging"
	"github.com/matst80/slask-inventory/pkg/paging"
	"github.com/matst80/slask-inventory/pkg/server"
	"github.com/matst80/slask-inventory/pkg/storage"
	"github.com/matst80/slask-inventory/pkg/tracking"
	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/view"
	amqp "github.com/rabbitmq/amqp091-go"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")
var dataFile = flag.String("data", "", "record file to load, overrides DATA_FILE")
var listenAddress = envOr("LISTEN_ADDRESS", ":8080")
var debugAddress = envOr("DEBUG_ADDRESS", ":8081")
var dataDir = envOr("DATA_DIR", "data")
var rabbitUrl = os.Getenv("RABBIT_URL")
var nodeName = envOr("NODE_NAME", "inventory")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func cacheTTL() time.Duration {
	if v, err := strconv.Atoi(os.Getenv("CACHE_TTL")); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return 5 * time.Minute
}

type app struct {
	store   *index.Store
	storage *storage.DiskStorage
	conn    *amqp.Connection
}

// HandleRecords persists a received record set after it has been swapped in.
func (a *app) HandleRecords(records []types.VehicleRecord) {
	records = storage.Dedup(records)
	a.store.Swap(records)
	if err := a.storage.SaveRecords(records, storage.RecordsFile); err != nil {
		log.Printf("Failed to save records: %v", err)
	}
}

func (a *app) ConnectAmqp(amqpUrl string) error {
	conn, err := amqp.DialConfig(amqpUrl, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		return err
	}
	a.conn = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if err = messaging.DefineTopic(ch, nodeName, messaging.VehiclesChanged); err != nil {
		return err
	}
	if err = messaging.ListenForRecords(ch, nodeName, a); err != nil {
		return err
	}
	log.Printf("Listening for %s", messaging.VehiclesChanged)
	return nil
}

func (a *app) loadRecords(name string) []types.VehicleRecord {
	candidates := []string{storage.RecordsFile, "vehicles.json"}
	if name != "" {
		candidates = []string{name}
	}
	for _, candidate := range candidates {
		records, err := a.storage.LoadRecords(candidate)
		if err == nil {
			return records
		}
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No record file %s", candidate)
			continue
		}
		log.Printf("Failed to load %s: %v", candidate, err)
	}
	return []types.VehicleRecord{}
}

func main() {
	flag.Parse()

	name := *dataFile
	if name == "" {
		name = os.Getenv("DATA_FILE")
	}
	a := &app{
		storage: storage.NewDiskStorage(dataDir),
	}
	a.store = index.NewStore(a.loadRecords(name))

	ws := server.NewWebServer(a.store, view.NewController(paging.DefaultPageSize)).WithStorage(a.storage)

	if redisUrl != "" {
		cache := server.NewCache(redisUrl, redisPassword, 0)
		if err := cache.Ping(); err != nil {
			log.Printf("Redis unavailable, running without cache: %v", err)
			cache.Close()
		} else {
			ws.WithCache(cache, cacheTTL())
		}
	}

	if rabbitUrl != "" {
		if err := a.ConnectAmqp(rabbitUrl); err != nil {
			log.Printf("Failed to connect to RabbitMQ: %v", err)
		}
		tracker, err := tracking.NewRabbitTracking(rabbitUrl, nodeName, nodeName)
		if err != nil {
			log.Printf("Failed to connect to rabbitmq for tracking: %v", err)
		} else {
			ws.WithTracking(tracker)
		}
	}

	cfg := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       15 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   20 * time.Second,
		Hook:       5 * time.Second,
	})

	if *enableProfiling {
		log.Println("Profiling enabled")
	}
	apiServer := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: ws.ClientHandler()}, cfg)
	debugServer := &http.Server{Addr: debugAddress, Handler: ws.DebugHandler(*enableProfiling), ReadHeaderTimeout: cfg.ReadHeader}

	common.RunServersWithShutdown([]*http.Server{apiServer, debugServer}, "inventory server", cfg.Shutdown, cfg.Hook,
		ws.Close,
		func(ctx context.Context) error {
			if a.conn == nil {
				return nil
			}
			return a.conn.Close()
		},
	)
}
