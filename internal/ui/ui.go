package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nextsound/nextsound/internal/catalog"
	"github.com/nextsound/nextsound/internal/source"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota
	SearchView
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	selector *source.Selector
	width    int
	height   int

	trackList list.Model
	listReady bool
	input     textinput.Model
	selected  *catalog.Track

	err  error
	help help.Model
	keys keyMap
}

type browseDoneMsg struct {
	list catalog.TrackList
	err  error
}

type searchDoneMsg struct {
	list  catalog.TrackList
	query string
	err   error
}

type trackDoneMsg struct {
	track catalog.Track
	err   error
}

// NewModel creates a new TUI model over the given source selector.
func NewModel(ctx context.Context, selector *source.Selector) *Model {
	input := textinput.New()
	input.Placeholder = "search tracks, artists, albums..."
	input.CharLimit = 120

	return &Model{
		ctx:      ctx,
		view:     BrowseView,
		selector: selector,
		input:    input,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init loads the default listing.
func (m *Model) Init() tea.Cmd {
	return m.fetchBrowse("tracks", "latest")
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.trackList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BrowseView:
			return m.handleBrowseKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case browseDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.setTracks("Latest Hits", msg.list.Results, "")
		return m, nil

	case searchDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.setTracks(fmt.Sprintf("Results for %q", msg.query), msg.list.Results, msg.query)
		m.view = BrowseView
		return m, nil

	case trackDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.selected = &msg.track
		m.view = DetailView
		return m, nil
	}

	if m.listReady && m.view == BrowseView {
		var cmd tea.Cmd
		m.trackList, cmd = m.trackList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case BrowseView:
		return m.renderBrowse()
	case SearchView:
		return m.renderSearch()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.view = SearchView
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "enter":
		if !m.listReady {
			return m, nil
		}
		if item, ok := m.trackList.SelectedItem().(trackItem); ok {
			return m, m.fetchTrack(item.track.ID)
		}
		return m, nil
	}

	if !m.listReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = BrowseView
		m.input.Blur()
		return m, nil
	case "enter":
		query := m.input.Value()
		m.input.Blur()
		if query == "" {
			m.view = BrowseView
			return m, nil
		}
		return m, m.fetchSearch(query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = BrowseView
		m.selected = nil
		return m, nil
	}
	return m, nil
}

func (m *Model) setTracks(title string, tracks []catalog.Track, query string) {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t, exact: query != "" && isExactHit(t, query)}
	}

	m.trackList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.trackList.Title = title
	m.trackList.SetFilteringEnabled(query == "")
	m.trackList.SetSize(m.width-4, m.height-8)
	m.listReady = true
}

func (m *Model) fetchBrowse(category, kind string) tea.Cmd {
	return func() tea.Msg {
		env := m.selector.Browse(m.ctx, category, kind)
		return browseDoneMsg{list: env.Data, err: env.Err}
	}
}

func (m *Model) fetchSearch(query string) tea.Cmd {
	return func() tea.Msg {
		env := m.selector.Search(m.ctx, query, 20)
		return searchDoneMsg{list: env.Data, query: query, err: env.Err}
	}
}

func (m *Model) fetchTrack(id string) tea.Cmd {
	return func() tea.Msg {
		env := m.selector.Get(m.ctx, id)
		return trackDoneMsg{track: env.Data, err: env.Err}
	}
}

func (m *Model) renderBrowse() string {
	if !m.listReady {
		return styles.help.Render("Loading...")
	}
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.search, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Search")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.input.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return styles.err.Render("No track selected\n\nPress esc to go back")
	}

	t := m.selected
	title := styles.title.Render(t.DisplayTitle())
	info := fmt.Sprintf("Artist: %s\nAlbum: %s\nYear: %d\nPopularity: %d/100\nDuration: %s",
		t.Artist, t.Album, t.Year, t.Popularity, formatDuration(t.DurationMS))
	if t.Genre != "" {
		info += fmt.Sprintf("\nGenre: %s", t.Genre)
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}

// isExactHit mirrors the exact-match tiers of the ranker for the list's
// star marker.
func isExactHit(t catalog.Track, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, s := range []string{t.Title, t.Name, t.OriginalTitle, t.Artist, t.Album, t.Genre} {
		if s != "" && strings.ToLower(s) == q {
			return true
		}
	}
	return false
}

func formatDuration(ms int) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
