package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
)

type stubTelemetry struct {
	mu     sync.Mutex
	events []string
}

func (s *stubTelemetry) Record(_ context.Context, event string, _ map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func newPage(t *testing.T) (*widgets.AdminPage, *widgets.ManualScheduler) {
	t.Helper()
	clock := widgets.NewManualScheduler()
	page := widgets.NewAdminPage(widgets.PageOptions{Scheduler: clock})
	return page, clock
}

func TestGoToPageCommand(t *testing.T) {
	pager := widgets.NewPaginator(widgets.PaginatorConfig[int]{
		Options:   widgets.PaginatorOptions{ItemsPerPage: 10},
		Container: widgets.NewMemoryDocument("p").Add("p"),
	})
	pager.SetData(make([]int, 25))
	telemetry := &stubTelemetry{}
	cmd := NewGoToPageCommand(pager, telemetry)

	if err := cmd.Execute(context.Background(), GoToPageInput{Target: "next"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if err := cmd.Execute(context.Background(), GoToPageInput{Target: "3"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if pager.CurrentPage() != 3 {
		t.Fatalf("expected page 3, got %d", pager.CurrentPage())
	}
	err := cmd.Execute(context.Background(), GoToPageInput{Target: "last"})
	if !errors.Is(err, ErrInvalidPageTarget) {
		t.Fatalf("expected invalid target error, got %v", err)
	}
	if len(telemetry.events) != 2 {
		t.Fatalf("expected 2 telemetry events, got %d", len(telemetry.events))
	}
}

func TestSetPageSizeCommand(t *testing.T) {
	page, _ := newPage(t)
	cmd := NewSetPageSizeCommand(page.Records, nil)
	if err := cmd.Execute(context.Background(), SetPageSizeInput{Size: 4}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if page.Records.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", page.Records.TotalPages())
	}
	if err := cmd.Execute(context.Background(), SetPageSizeInput{Size: 0}); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestSearchCommandsRoundTrip(t *testing.T) {
	page, clock := newPage(t)
	ctx := context.Background()

	input := NewSearchInputCommand(page.Search, nil)
	if err := input.Execute(ctx, SearchInputInput{Query: "order"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if page.Search.Visible() {
		t.Fatalf("expected debounce to hold the search")
	}
	clock.Advance(300 * time.Millisecond)
	if !page.Search.Visible() {
		t.Fatalf("expected results after the delay")
	}

	keys := NewSearchKeyCommand(page.Search, nil)
	for _, key := range []string{"ArrowDown", "ArrowDown"} {
		if err := keys.Execute(ctx, SearchKeyInput{Key: key}); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	}
	if page.Search.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", page.Search.Cursor())
	}
	if err := keys.Execute(ctx, SearchKeyInput{Key: "Tab"}); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected unknown key error, got %v", err)
	}
	if err := keys.Execute(ctx, SearchKeyInput{Key: "Enter"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	toasts := page.Toasts.Toasts()
	if len(toasts) != 1 || toasts[0].Title != "Search Result" {
		t.Fatalf("expected a selection toast, got %+v", toasts)
	}
}

func TestSelectResultCommand(t *testing.T) {
	page, _ := newPage(t)
	ctx := context.Background()
	if err := NewSearchInputCommand(page.Search, nil).Execute(ctx, SearchInputInput{Query: "customer", Immediate: true}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	cmd := NewSelectResultCommand(page.Search, nil)
	if err := cmd.Execute(ctx, SelectResultInput{ID: "missing"}); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := cmd.Execute(ctx, SelectResultInput{}); err == nil {
		t.Fatalf("expected error without id or index")
	}
	if err := cmd.Execute(ctx, SelectResultInput{ID: "user-fatima"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got := page.Search.State().Input; got != "Fatima Ali" {
		t.Fatalf("expected input to show the title, got %q", got)
	}
}

func TestSetFilterCommand(t *testing.T) {
	page, _ := newPage(t)
	cmd := NewSetFilterCommand(page.Search, nil)
	if err := cmd.Execute(context.Background(), SetFilterInput{Filter: "users"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if page.Search.ActiveFilter() != "users" {
		t.Fatalf("expected users filter, got %q", page.Search.ActiveFilter())
	}
}

func TestShellCommands(t *testing.T) {
	page, _ := newPage(t)
	ctx := context.Background()

	lang := NewSetLanguageCommand(page.Shell, nil)
	if err := lang.Execute(ctx, SetLanguageInput{}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if page.Shell.Language() != widgets.LanguageEnglish {
		t.Fatalf("expected english after toggle")
	}
	if err := lang.Execute(ctx, SetLanguageInput{Language: "de"}); !errors.Is(err, widgets.ErrUnsupportedLanguage) {
		t.Fatalf("expected unsupported language, got %v", err)
	}

	color := NewChangeColorCommand(page.Shell, nil)
	if err := color.Execute(ctx, ChangeColorInput{Color: "#0d6efd"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	saved, ok, _ := page.Store().Get(ctx, widgets.PreferencePrimaryColor)
	if !ok || saved != "#0d6efd" {
		t.Fatalf("expected persisted color, got %q", saved)
	}
}

func TestShowToastCommand(t *testing.T) {
	page, _ := newPage(t)
	cmd := NewShowToastCommand(page.Toasts, nil)
	if err := cmd.Execute(context.Background(), ShowToastInput{Message: " "}); err == nil {
		t.Fatalf("expected error for blank message")
	}
	if err := cmd.Execute(context.Background(), ShowToastInput{Message: "Saved", Type: "success"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	toasts := page.Toasts.Toasts()
	if len(toasts) != 1 || toasts[0].Type != widgets.ToastSuccess || toasts[0].Title != "Success" {
		t.Fatalf("unexpected toasts %+v", toasts)
	}
}

func TestTableAndTabCommands(t *testing.T) {
	page, _ := newPage(t)
	ctx := context.Background()
	if err := NewSortTableCommand(page.Table, nil).Execute(ctx, SortTableInput{Column: 3}); err == nil {
		t.Fatalf("expected status column to be unsortable")
	}
	if err := NewSortTableCommand(page.Table, nil).Execute(ctx, SortTableInput{Column: 0}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if err := NewSwitchTabCommand(page.Tabs, nil).Execute(ctx, SwitchTabInput{ID: "analytics"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if err := NewSwitchTabCommand(page.Tabs, nil).Execute(ctx, SwitchTabInput{ID: "nope"}); err == nil {
		t.Fatalf("expected unknown tab error")
	}
}
