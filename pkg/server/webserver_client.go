package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/matst80/slask-inventory/pkg/common"
	"github.com/matst80/slask-inventory/pkg/index"
	"github.com/matst80/slask-inventory/pkg/storage"
	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/view"
	"github.com/matst80/slask-inventory/pkg/viewstate"
)

func cacheKey(version, query string) string {
	return fmt.Sprintf("view:%s:%s", version, query)
}

func (ws *WebServer) current() *index.Source {
	if ws.Store == nil {
		return nil
	}
	return ws.Store.Current()
}

func (ws *WebServer) Vehicles(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	state := viewstate.Decode(r.URL.RawQuery)
	query := viewstate.Canonical(state)
	source := ws.current()

	render := func() VehiclesResponse {
		return responseFrom(ws.Controller.Render(r.Context(), source, state), query)
	}

	data := VehiclesResponse{}
	if source != nil && ws.responses != nil {
		if err := ws.responses.Handle(cacheKey(source.Version, query), &data, render, ws.CacheTTL); err != nil {
			log.Printf("Failed to cache view %s: %v", query, err)
		}
	} else {
		data = render()
	}

	if ws.Tracking != nil {
		req := r.Clone(r.Context())
		filters := state.Filters
		hits, page := data.TotalHits, data.Page
		ws.track(func() {
			ws.Tracking.TrackView(sessionId, &filters, hits, page, req)
		})
	}

	defaultHeaders(w, "120")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(data)
}

func (ws *WebServer) Options(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	defaultHeaders(w, "600")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ws.Controller.Options(r.Context(), ws.current()))
}

func (ws *WebServer) GetVehicle(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	id := r.PathValue("id")
	record, ok := ws.current().GetRecord(id)
	if !ok {
		return common.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("vehicle %s: %v", id, types.ErrNotFound))
	}
	publicHeaders(w, "120")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(VehicleRow{
		VehicleRecord:    *record,
		UpdatedAtDisplay: types.FormatTimestamp(record.UpdatedAt),
	})
}

func (ws *WebServer) Navigate(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	if r.Method != http.MethodPost {
		badRequests.WithLabelValues("navigate").Inc()
		w.Header().Set("Allow", "POST, OPTIONS")
		return common.ErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	}
	req := NavigateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequests.WithLabelValues("navigate").Inc()
		return common.ErrorResponse(w, http.StatusBadRequest, err.Error())
	}
	nav, err := navigationFor(req)
	if err != nil {
		badRequests.WithLabelValues("navigate").Inc()
		return common.ErrorResponse(w, http.StatusBadRequest, err.Error())
	}
	ws.trackNavigation(sessionId, req.Action, nav)

	defaultHeaders(w, "0")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(nav)
}

func (ws *WebServer) Reset(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	nav := view.ResetFilters()
	ws.trackNavigation(sessionId, ActionReset, nav)
	defaultHeaders(w, "0")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(nav)
}

func (ws *WebServer) trackNavigation(sessionId int, action string, nav view.Navigation) {
	if ws.Tracking == nil {
		return
	}
	event := types.NavigationEvent{Action: action, Query: nav.Query, Mode: string(nav.Mode)}
	ws.track(func() {
		if err := ws.Tracking.TrackNavigation(sessionId, event); err != nil {
			log.Printf("Error sending navigation event: %v", err)
		}
	})
}

func navigationFor(req NavigateRequest) (view.Navigation, error) {
	switch req.Action {
	case ActionFilter:
		if !viewstate.IsFilterKey(req.Key) {
			return view.Navigation{}, fmt.Errorf("unknown filter %q", req.Key)
		}
		return view.SetFilter(req.Query, req.Key, req.Value), nil
	case ActionSort:
		column := types.Column(req.Column)
		if !column.Valid() {
			return view.Navigation{}, fmt.Errorf("unknown sort column %q", req.Column)
		}
		return view.ToggleSort(req.Query, column), nil
	case ActionPage:
		return view.SetPage(req.Query, max(req.Page, types.FirstPage)), nil
	case ActionReset:
		return view.ResetFilters(), nil
	}
	return view.Navigation{}, fmt.Errorf("unknown action %q", req.Action)
}

// Export streams the persisted record file as gzipped json lines.
func (ws *WebServer) Export(w http.ResponseWriter, r *http.Request) {
	if ws.Storage == nil {
		http.Error(w, "export not configured", http.StatusNotFound)
		return
	}
	fileName, _ := ws.Storage.GetFileName(storage.RecordsFile)
	if _, err := os.Stat(fileName); err != nil {
		http.Error(w, "no records saved", http.StatusNotFound)
		return
	}
	genericHeaders(w)
	w.Header().Set("Content-Type", "application/gzip")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+storage.RecordsFile+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := ws.Storage.StreamContent(w, storage.RecordsFile); err != nil {
		log.Printf("Failed to stream %s: %v", storage.RecordsFile, err)
	}
}
