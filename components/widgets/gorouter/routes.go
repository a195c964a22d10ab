package gorouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	gocommand "github.com/goliatone/go-command"
	router "github.com/goliatone/go-router"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	"github.com/goliatone/go-admin-widgets/components/widgets/httpapi"
	"github.com/goliatone/go-admin-widgets/components/widgets/queries"
)

// FragmentSource returns the last markup rendered into a page container.
type FragmentSource interface {
	Content(containerID string) string
}

// Config wires go-router with the widget commands, queries and toast stream.
type Config[T any] struct {
	Router    router.Router[T]
	API       httpapi.Executor
	Snapshot  gocommand.Querier[queries.PageInput, widgets.PageSnapshot]
	Lookup    gocommand.Querier[queries.SearchInput, []widgets.SearchRecord]
	Fragments FragmentSource
	Broadcast *widgets.BroadcastHook
	BasePath  string
	Routes    RouteConfig
}

// RouteConfig customizes the relative paths used for widget endpoints.
type RouteConfig struct {
	State       string
	Fragment    string
	Lookup      string
	Page        string
	PageSize    string
	SearchInput string
	SearchKey   string
	Select      string
	Filter      string
	Language    string
	Color       string
	Toasts      string
	Sort        string
	Tabs        string
	WebSocket   string
}

// Register mounts widget routes (JSON state, HTML fragments, commands and the
// toast WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.API == nil && cfg.Snapshot == nil {
		return errors.New("gorouter: executor or snapshot query is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/admin"
	}
	group := cfg.Router.Group(base)

	if cfg.Snapshot != nil {
		group.Get(routes.State, router.WrapHandler(func(ctx router.Context) error {
			return respondSnapshot(ctx, cfg.Snapshot, http.StatusOK)
		}))
	}

	if cfg.Fragments != nil {
		group.Get(routes.Fragment, router.WrapHandler(func(ctx router.Context) error {
			id := strings.TrimSpace(ctx.Param("id"))
			if id == "" {
				return respondError(ctx, http.StatusBadRequest, errors.New("container id is required"))
			}
			ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
			return ctx.Send([]byte(cfg.Fragments.Content(id)))
		}))
	}

	if cfg.Lookup != nil {
		group.Get(routes.Lookup, router.WrapHandler(func(ctx router.Context) error {
			input := queries.SearchInput{Query: ctx.Query("q"), Filter: ctx.Query("filter")}
			records, err := cfg.Lookup.Query(ctx.Context(), input)
			if err != nil {
				return respondError(ctx, http.StatusInternalServerError, err)
			}
			if records == nil {
				records = []widgets.SearchRecord{}
			}
			return ctx.JSON(http.StatusOK, map[string]any{"query": input.Query, "results": records})
		}))
	}

	if cfg.API != nil {
		registerAPI(group, cfg, routes)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}
	return nil
}

func registerAPI[T any](r router.Router[T], cfg Config[T], routes RouteConfig) {
	api := cfg.API
	post(r, cfg, routes.Page, api.GoToPage)
	post(r, cfg, routes.PageSize, api.SetPageSize)
	post(r, cfg, routes.SearchInput, api.SearchInput)
	post(r, cfg, routes.SearchKey, api.SearchKey)
	post(r, cfg, routes.Select, api.SelectResult)
	post(r, cfg, routes.Filter, api.SetFilter)
	post(r, cfg, routes.Language, api.SetLanguage)
	post(r, cfg, routes.Color, api.ChangeColor)
	post(r, cfg, routes.Toasts, api.ShowToast)
	post(r, cfg, routes.Sort, api.SortTable)
	post(r, cfg, routes.Tabs, api.SwitchTab)
}

func post[T any, In any](r router.Router[T], cfg Config[T], path string, exec func(context.Context, In) error) {
	r.Post(path, router.WrapHandler(func(ctx router.Context) error {
		var payload In
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return respondError(ctx, http.StatusBadRequest, err)
		}
		if err := exec(ctx.Context(), payload); err != nil {
			return respondError(ctx, httpapi.StatusFor(err), err)
		}
		if cfg.Snapshot == nil {
			return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
		}
		return respondSnapshot(ctx, cfg.Snapshot, http.StatusOK)
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *widgets.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func respondSnapshot(ctx router.Context, query gocommand.Querier[queries.PageInput, widgets.PageSnapshot], status int) error {
	snapshot, err := query.Query(ctx.Context(), queries.PageInput{})
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, err)
	}
	return ctx.JSON(status, snapshot)
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.State == "" {
		routes.State = "/widgets/state"
	}
	if routes.Fragment == "" {
		routes.Fragment = "/widgets/fragments/:id"
	}
	if routes.Lookup == "" {
		routes.Lookup = "/widgets/search"
	}
	if routes.Page == "" {
		routes.Page = "/widgets/page"
	}
	if routes.PageSize == "" {
		routes.PageSize = "/widgets/page/size"
	}
	if routes.SearchInput == "" {
		routes.SearchInput = "/widgets/search/input"
	}
	if routes.SearchKey == "" {
		routes.SearchKey = "/widgets/search/key"
	}
	if routes.Select == "" {
		routes.Select = "/widgets/search/select"
	}
	if routes.Filter == "" {
		routes.Filter = "/widgets/search/filter"
	}
	if routes.Language == "" {
		routes.Language = "/widgets/language"
	}
	if routes.Color == "" {
		routes.Color = "/widgets/color"
	}
	if routes.Toasts == "" {
		routes.Toasts = "/widgets/toasts"
	}
	if routes.Sort == "" {
		routes.Sort = "/widgets/table/sort"
	}
	if routes.Tabs == "" {
		routes.Tabs = "/widgets/tabs"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/widgets/ws"
	}
	return routes
}
