package view

import (
	"context"
	"log"
	"sync"

	"github.com/matst80/slask-inventory/pkg/facet"
	"github.com/matst80/slask-inventory/pkg/index"
	"github.com/matst80/slask-inventory/pkg/paging"
	"github.com/matst80/slask-inventory/pkg/sorting"
	"github.com/matst80/slask-inventory/pkg/types"
	"github.com/matst80/slask-inventory/pkg/viewstate"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	name   = "slask-inventory-view"
	tracer = otel.Tracer(name)
)

type Result struct {
	Items      []types.VehicleRecord `json:"items"`
	TotalPages int                   `json:"totalPages"`
	TotalHits  int                   `json:"totalHits"`
	Empty      bool                  `json:"empty"`
	Page       int                   `json:"page"`
	PrevPage   int                   `json:"prevPage,omitempty"`
	NextPage   int                   `json:"nextPage,omitempty"`
	Sort       types.SortState       `json:"sort"`
	Filters    types.FilterState     `json:"filters"`
}

type Navigation struct {
	Query string                `json:"query"`
	Mode  viewstate.HistoryMode `json:"mode"`
}

// Controller runs the view pipeline. It keeps no view state of its own, every
// call gets the state it works on, so one Controller serves all requests.
type Controller struct {
	paginator *paging.Paginator
	options   *facet.OptionCache
	sorters   sync.Pool
}

func NewController(pageSize int) *Controller {
	return &Controller{
		paginator: paging.NewPaginator(pageSize),
		options:   facet.NewOptionCache(8),
		sorters: sync.Pool{
			New: func() any {
				return sorting.NewSorter()
			},
		},
	}
}

// SourceChanged drops options of replaced sources and derives the options of
// the new one, so the first request after a reload does not pay for it.
func (c *Controller) SourceChanged(source *index.Source) {
	c.options.Purge()
	if source == nil {
		return
	}
	opts := c.options.Get(source.Version, source.Records)
	log.Printf("options for %s: %d makes, %d models, %d years", source.Version, len(opts.Makes), len(opts.Models), len(opts.Years))
}

// Options derives the filter choices from the whole source, regardless of
// any active filter.
func (c *Controller) Options(ctx context.Context, source *index.Source) facet.Options {
	_, span := tracer.Start(ctx, "derive options")
	defer span.End()
	if source == nil {
		return facet.DeriveOptions(nil)
	}
	return c.options.Get(source.Version, source.Records)
}

// Render filters, sorts and paginates the source, in that order.
func (c *Controller) Render(ctx context.Context, source *index.Source, state types.ViewState) Result {
	ctx, span := tracer.Start(ctx, "render view")
	defer span.End()

	var records []types.VehicleRecord
	if source != nil {
		records = source.Records
	}
	if state.Page < types.FirstPage {
		state.Page = types.FirstPage
	}
	if !state.Sort.Column.Valid() {
		state.Sort.Column = types.ColumnMake
	}
	if !state.Sort.Direction.Valid() {
		state.Sort.Direction = types.Ascending
	}

	filtered := c.match(ctx, records, state.Filters)
	sorted := c.sort(ctx, filtered, state.Sort)
	items := c.paginate(ctx, sorted, state.Page)

	viewsRendered.Inc()
	if len(filtered) == 0 {
		emptyResults.Inc()
	}
	span.SetAttributes(
		attribute.Int("hits", len(filtered)),
		attribute.Int("page", state.Page),
	)

	totalPages := c.paginator.TotalPages(len(filtered))
	prev, next := navigablePages(state.Page, totalPages)
	return Result{
		Items:      items,
		TotalPages: totalPages,
		TotalHits:  len(filtered),
		Empty:      len(filtered) == 0,
		Page:       state.Page,
		PrevPage:   prev,
		NextPage:   next,
		Sort:       state.Sort,
		Filters:    state.Filters,
	}
}

// navigablePages returns the previous and next page controls, 0 when a
// control is disabled. A page past the end steps back to the last page.
func navigablePages(page, totalPages int) (prev, next int) {
	if page > types.FirstPage && totalPages > 0 {
		prev = paging.Clamp(page-1, totalPages)
	}
	if page < totalPages {
		next = page + 1
	}
	return prev, next
}

func (c *Controller) match(ctx context.Context, records []types.VehicleRecord, filter types.FilterState) []types.VehicleRecord {
	_, span := tracer.Start(ctx, "match filters")
	defer span.End()
	return facet.Match(records, filter)
}

func (c *Controller) sort(ctx context.Context, records []types.VehicleRecord, state types.SortState) []types.VehicleRecord {
	_, span := tracer.Start(ctx, "sort")
	defer span.End()
	sorter := c.sorters.Get().(*sorting.Sorter)
	defer c.sorters.Put(sorter)
	return sorter.Sort(records, state)
}

func (c *Controller) paginate(ctx context.Context, records []types.VehicleRecord, page int) []types.VehicleRecord {
	_, span := tracer.Start(ctx, "paginate")
	defer span.End()
	return c.paginator.Apply(records, page)
}
