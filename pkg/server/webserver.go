package server

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/matst80/slask-inventory/pkg/common"
	"github.com/matst80/slask-inventory/pkg/index"
	"github.com/matst80/slask-inventory/pkg/storage"
	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/view"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WebServer struct {
	Store      *index.Store
	Controller *view.Controller
	Cache      *Cache
	CacheTTL   time.Duration
	Tracking   types.Tracking
	Storage    *storage.DiskStorage
	responses  *CacheHelper[VehiclesResponse]
	events     *common.QueueHandler[func()]
}

func NewWebServer(store *index.Store, controller *view.Controller) *WebServer {
	if store != nil && controller != nil {
		store.AddChangeHandler(controller)
	}
	return &WebServer{
		Store:      store,
		Controller: controller,
		CacheTTL:   5 * time.Minute,
	}
}

func (ws *WebServer) WithCache(cache *Cache, ttl time.Duration) *WebServer {
	ws.Cache = cache
	if ttl > 0 {
		ws.CacheTTL = ttl
	}
	ws.responses = NewCacheHelper[VehiclesResponse](cache)
	return ws
}

// WithStorage enables the record export from the persisted record file.
func (ws *WebServer) WithStorage(disk *storage.DiskStorage) *WebServer {
	ws.Storage = disk
	return ws
}

// WithTracking publishes view and navigation events from a background queue
// so requests never wait for the broker.
func (ws *WebServer) WithTracking(trk types.Tracking) *WebServer {
	ws.Tracking = trk
	ws.events = common.NewQueueHandler(func(items []func()) {
		for _, send := range items {
			send()
		}
	}, 50, time.Second)
	return ws
}

func (ws *WebServer) track(send func()) {
	if ws.events == nil {
		return
	}
	ws.events.Add(send)
}

func (ws *WebServer) Close(ctx context.Context) error {
	if ws.events != nil {
		ws.events.Close()
	}
	if ws.Tracking != nil {
		if err := ws.Tracking.Close(); err != nil {
			return err
		}
	}
	if ws.Cache != nil {
		return ws.Cache.Close()
	}
	return nil
}

func (ws *WebServer) ClientHandler() *http.ServeMux {
	srv := http.NewServeMux()
	srv.HandleFunc("/health", ws.Health)
	srv.HandleFunc("GET /api/vehicles", common.JsonHandler(ws.Tracking, ws.Vehicles))
	srv.HandleFunc("GET /api/vehicles/{id}", common.JsonHandler(ws.Tracking, ws.GetVehicle))
	srv.HandleFunc("GET /api/options", common.JsonHandler(ws.Tracking, ws.Options))
	srv.HandleFunc("/api/navigate", common.JsonHandler(ws.Tracking, ws.Navigate))
	srv.HandleFunc("GET /api/reset", common.JsonHandler(ws.Tracking, ws.Reset))
	srv.HandleFunc("GET /api/export", ws.Export)
	return srv
}

func (ws *WebServer) DebugHandler(profiling bool) *http.ServeMux {
	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", ws.Health)
	debugMux.Handle("/metrics", promhttp.Handler())
	if !profiling {
		return debugMux
	}
	debugMux.HandleFunc("/debug/pprof/", pprof.Index)
	debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return debugMux
}

func (ws *WebServer) Health(w http.ResponseWriter, r *http.Request) {
	if ws.Store == nil || ws.Store.Current() == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("no source loaded"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
