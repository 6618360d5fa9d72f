package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/comgen/marylandPlot/internal/app"
	"github.com/comgen/marylandPlot/internal/charts"
	"github.com/comgen/marylandPlot/internal/dataset"
)

const threeGenes = `{"individuals":[1,2,3,4],"genes":{"ALPHA":[1,4,9,16],"ALBUM":[2,2,2,2],"BETA":[5,3,1,0]}}`

func parse(t *testing.T, doc string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return ds
}

// ready returns a model over a loaded app with the search box focused.
func ready(t *testing.T, cfg app.Config) (Model, *charts.MockRenderer) {
	t.Helper()
	renderer := &charts.MockRenderer{}
	if cfg.Renderer == nil {
		cfg.Renderer = renderer
	}
	a := app.New(cfg)
	m := NewModel(a, nil, "data.json", 0)
	m = update(t, m, datasetLoadedMsg{dataset: parse(t, threeGenes)})
	return m, renderer
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return got
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateLoading, "loading"},
		{StateReady, "ready"},
		{StateError, "error"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewModel(t *testing.T) {
	a := app.New(app.Config{})
	m := NewModel(a, nil, "data.json", 0)

	t.Run("starts loading", func(t *testing.T) {
		if m.State() != StateLoading {
			t.Errorf("State() = %v, want %v", m.State(), StateLoading)
		}
	})

	t.Run("default placeholder", func(t *testing.T) {
		if m.searchInput.Placeholder != app.PlaceholderDefault {
			t.Errorf("Placeholder = %q, want %q", m.searchInput.Placeholder, app.PlaceholderDefault)
		}
	})

	t.Run("keys ignored while loading", func(t *testing.T) {
		got := update(t, m, keys("/"))
		if got.focus != FocusNone {
			t.Errorf("focus = %v, want FocusNone", got.focus)
		}
	})

	t.Run("loading view names the source", func(t *testing.T) {
		if !strings.Contains(m.View(), "Loading dataset from data.json") {
			t.Errorf("View() = %q", m.View())
		}
	})
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(threeGenes), 0o600); err != nil {
		t.Fatal(err)
	}

	m := NewModel(app.New(app.Config{}), nil, path, 0)
	msg, ok := m.loadDataset()().(datasetLoadedMsg)
	if !ok {
		t.Fatal("loadDataset() did not produce datasetLoadedMsg")
	}
	if msg.err != nil {
		t.Fatalf("load error = %v", msg.err)
	}

	m = update(t, m, msg)
	if m.State() != StateReady {
		t.Fatalf("State() = %v, want %v", m.State(), StateReady)
	}
	if m.focus != FocusSearch {
		t.Errorf("focus = %v, want FocusSearch", m.focus)
	}
	if !m.showList || m.suggestions.Len() != 3 {
		t.Errorf("suggestions = %v, want the full list", m.suggestions.Items())
	}
}

func TestLoadFailure(t *testing.T) {
	a := app.New(app.Config{})
	m := NewModel(a, nil, "missing.json", 0)
	m = update(t, m, datasetLoadedMsg{err: errors.New("boom")})

	if m.State() != StateError {
		t.Fatalf("State() = %v, want %v", m.State(), StateError)
	}
	if a.Loaded() {
		t.Error("app reports loaded after a failed load")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("View() = %q, want the load error", m.View())
	}

	m = update(t, m, keys("/"))
	if m.focus != FocusNone {
		t.Error("search focused after a failed load")
	}
}

func TestTypingFilters(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  []string
	}{
		{"prefix", "al", []string{"ALPHA", "ALBUM"}},
		{"substring", "et", []string{"BETA"}},
		{"no match", "zz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := ready(t, app.Config{})
			m = update(t, m, keys(tt.typed))

			if !m.showList {
				t.Fatal("suggestion list hidden")
			}
			got := m.suggestions.Items()
			if len(got) != len(tt.want) {
				t.Fatalf("suggestions = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("suggestions[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEmptyQueryHidesList(t *testing.T) {
	m, _ := ready(t, app.Config{})
	m = update(t, m, keys("a"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})

	if m.showList {
		t.Errorf("list shown for an empty query: %v", m.suggestions.Items())
	}
}

func TestArrowKeysWrap(t *testing.T) {
	tests := []struct {
		name  string
		press []tea.KeyType
		want  string
	}{
		{"first down", []tea.KeyType{tea.KeyDown}, "ALPHA"},
		{"first up", []tea.KeyType{tea.KeyUp}, "BETA"},
		{"down past end", []tea.KeyType{tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyDown}, "ALPHA"},
		{"down then up", []tea.KeyType{tea.KeyDown, tea.KeyDown, tea.KeyUp}, "ALPHA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := ready(t, app.Config{})
			for _, k := range tt.press {
				m = update(t, m, tea.KeyMsg{Type: k})
			}
			got, ok := m.suggestions.Active()
			if !ok || got != tt.want {
				t.Errorf("Active() = %q, %v, want %q", got, ok, tt.want)
			}
		})
	}
}

func TestEnterCommits(t *testing.T) {
	m, renderer := ready(t, app.Config{})

	t.Run("no active suggestion", func(t *testing.T) {
		got := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if len(got.app.Selected()) != 0 {
			t.Errorf("Selected() = %v, want none", got.app.Selected())
		}
	})

	m = update(t, m, keys("bet"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if sel := m.app.Selected(); len(sel) != 1 || sel[0] != "BETA" {
		t.Fatalf("Selected() = %v, want [BETA]", sel)
	}
	if m.showList || m.searchInput.Value() != "" {
		t.Errorf("input not cleared after commit: list=%v value=%q", m.showList, m.searchInput.Value())
	}
	if len(renderer.Charts) != 1 {
		t.Fatalf("rendered %d charts, want 1", len(renderer.Charts))
	}
	if !strings.Contains(m.View(), "BETA") {
		t.Error("View() does not show the selected gene")
	}
}

func TestDuplicateCommit(t *testing.T) {
	m, _ := ready(t, app.Config{})
	m, _ = m.commit("ALPHA")
	m, _ = m.commit("ALPHA")

	if len(m.app.Selected()) != 1 {
		t.Errorf("Selected() = %v, want one ALPHA", m.app.Selected())
	}
	if !strings.Contains(m.status, "already plotted") {
		t.Errorf("status = %q", m.status)
	}
}

func TestBlurClearsAfterDelay(t *testing.T) {
	m, _ := ready(t, app.Config{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("esc returned no deferred clear")
	}
	if !m.showList {
		t.Fatal("list cleared before the deferral elapsed")
	}

	t.Run("matching blur hides the list", func(t *testing.T) {
		got := update(t, m, clearSuggestionsMsg{seq: m.blurSeq})
		if got.showList {
			t.Error("list still shown")
		}
	})

	t.Run("stale blur is ignored after refocus", func(t *testing.T) {
		stale := m.blurSeq
		got := update(t, m, keys("/"))
		got = update(t, got, clearSuggestionsMsg{seq: stale})
		if !got.showList {
			t.Error("refocused list was cleared by an old blur")
		}
	})

	t.Run("click lands before the clear", func(t *testing.T) {
		got := update(t, m, tea.MouseMsg{
			X:      4,
			Y:      SuggestionsTop + 1,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		if sel := got.app.Selected(); len(sel) != 1 || sel[0] != "ALBUM" {
			t.Errorf("Selected() = %v, want [ALBUM]", sel)
		}
	})
}

func TestMouse(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		picked []string
	}{
		{
			name:   "left click on suggestion",
			msg:    tea.MouseMsg{Y: SuggestionsTop + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			picked: []string{"BETA"},
		},
		{
			name: "right click ignored",
			msg:  tea.MouseMsg{Y: SuggestionsTop, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "release ignored",
			msg:  tea.MouseMsg{Y: SuggestionsTop, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
		{
			name: "below the list",
			msg:  tea.MouseMsg{Y: SuggestionsTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := ready(t, app.Config{})
			m = update(t, m, tt.msg)
			sel := m.app.Selected()
			if len(sel) != len(tt.picked) {
				t.Fatalf("Selected() = %v, want %v", sel, tt.picked)
			}
			for i := range sel {
				if sel[i] != tt.picked[i] {
					t.Errorf("Selected()[%d] = %q, want %q", i, sel[i], tt.picked[i])
				}
			}
		})
	}
}

func TestVisibleRange(t *testing.T) {
	names := make([]string, 20)
	for i := range names {
		names[i] = string(rune('a' + i))
	}

	tests := []struct {
		name      string
		active    int
		wantStart int
		wantEnd   int
	}{
		{"nothing active", -1, 0, MaxVisibleSuggestions},
		{"inside first page", 3, 0, MaxVisibleSuggestions},
		{"scrolled", MaxVisibleSuggestions, 1, MaxVisibleSuggestions + 1},
		{"last", 19, 20 - MaxVisibleSuggestions, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{}.showSuggestions(names)
			m.suggestions.Set(tt.active)
			start, end := m.visibleRange()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("visibleRange() = %d, %d, want %d, %d", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	m, _ := ready(t, app.Config{MaxSelected: 1})
	m, _ = m.commit("ALPHA")

	if m.searchInput.Placeholder != app.PlaceholderFull {
		t.Errorf("Placeholder = %q, want %q", m.searchInput.Placeholder, app.PlaceholderFull)
	}
	if m.focus == FocusSearch {
		t.Error("search keeps focus at capacity")
	}

	t.Run("focus refused", func(t *testing.T) {
		got := update(t, m, keys("/"))
		if got.focus == FocusSearch {
			t.Error("search focused at capacity")
		}
		if got.status != app.PlaceholderFull {
			t.Errorf("status = %q, want %q", got.status, app.PlaceholderFull)
		}
	})

	t.Run("typing clears the input", func(t *testing.T) {
		got := m
		got.focus = FocusSearch
		got.searchInput.SetValue("BE")
		got = update(t, got, keys("T"))
		if got.searchInput.Value() != "" {
			t.Errorf("Value() = %q, want empty", got.searchInput.Value())
		}
		if len(got.app.Selected()) != 1 {
			t.Errorf("Selected() = %v", got.app.Selected())
		}
	})
}

func TestChipsRemoval(t *testing.T) {
	m, renderer := ready(t, app.Config{})
	m, _ = m.commit("ALPHA")
	m, _ = m.focusSearch()
	m, _ = m.commit("BETA")
	m, _ = m.focusSearch()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusChips {
		t.Fatalf("focus = %v, want FocusChips", m.focus)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.chipIndex != 1 {
		t.Errorf("chipIndex = %d, want 1", m.chipIndex)
	}
	m = update(t, m, keys("x"))
	if sel := m.app.Selected(); len(sel) != 1 || sel[0] != "ALPHA" {
		t.Fatalf("Selected() = %v, want [ALPHA]", sel)
	}
	if m.chipIndex != 0 {
		t.Errorf("chipIndex = %d, want clamped to 0", m.chipIndex)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if len(m.app.Selected()) != 0 {
		t.Fatalf("Selected() = %v, want none", m.app.Selected())
	}
	if m.app.Canvas().Live() {
		t.Error("chart still live after deselecting everything")
	}
	for i, c := range renderer.Charts {
		if !c.Destroyed {
			t.Errorf("chart %d not destroyed", i)
		}
	}
	if m.focus != FocusSearch {
		t.Errorf("focus = %v, want FocusSearch once no chips remain", m.focus)
	}
	if strings.Contains(m.View(), "ALPHA ×") {
		t.Error("View() still shows a removed chip")
	}
}

func TestTabWithoutChips(t *testing.T) {
	m, _ := ready(t, app.Config{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusSearch {
		t.Errorf("focus = %v, want FocusSearch", m.focus)
	}
}

func TestResize(t *testing.T) {
	terminal := charts.NewTerminal(DefaultTerminalWidth)
	a := app.New(app.Config{Renderer: terminal})
	a.SetDataset(parse(t, threeGenes))
	m := NewModel(a, terminal, "data.json", 0)
	m, _ = m.commit("ALPHA")

	m = update(t, m, tea.WindowSizeMsg{Width: 126, Height: 50})

	if terminal.Width != 120 {
		t.Errorf("terminal width = %d, want 120", terminal.Width)
	}
	if !a.Canvas().Live() {
		t.Fatal("chart lost on resize")
	}
	if !strings.Contains(m.View(), "Individual ID") {
		t.Error("View() does not include the redrawn chart")
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"q outside search", keys("q")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := ready(t, app.Config{})
			m, _ = m.blurSearch()
			_, cmd := m.Update(tt.msg)
			if cmd == nil {
				t.Fatal("no command returned")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
		})
	}
}
