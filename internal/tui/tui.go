// Package tui is the interactive browser: one fetch up front, then paging
// through the result with the arrow keys.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rs/zerolog"

	"github.com/ferhatb/itemls/internal/config"
	"github.com/ferhatb/itemls/internal/fetch"
	"github.com/ferhatb/itemls/internal/model"
	"github.com/ferhatb/itemls/internal/pager"
	"github.com/ferhatb/itemls/internal/store/cachestore"
	"github.com/ferhatb/itemls/internal/ui"
)

// Options tune the browser from root flags.
type Options struct {
	Cached  bool
	NoClamp bool

	// CacheDir overrides where the snapshot lives; empty means the working
	// directory.
	CacheDir string
}

type state int

const (
	stateLoading state = iota
	stateReady
	stateFailed
)

// itemsMsg delivers a successful load.
type itemsMsg []model.Item

// errMsg delivers a failed load.
type errMsg struct{ err error }

type keyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Retry key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/p", "prev page")),
		Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/n", "next page")),
		First: key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
		Last:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
		Retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refetch")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model implements tea.Model for the browser.
type Model struct {
	cfg  *config.Config
	log  zerolog.Logger
	opt  Options
	keys keyMap

	state state
	spin  spinner.Model
	pag   paginator.Model
	pgr   *pager.Pager
	err   error
	width int
}

// NewModel builds the browser in its loading state.
func NewModel(cfg *config.Config, log zerolog.Logger, opt Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.AccentStyle

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = ui.AccentStyle.Render("●")
	pg.InactiveDot = ui.MutedStyle.Render("○")

	return Model{
		cfg:   cfg,
		log:   log,
		opt:   opt,
		keys:  defaultKeyMap(),
		state: stateLoading,
		spin:  sp,
		pag:   pg,
		width: 80,
	}
}

// Browse runs the browser until the user quits.
func Browse(cfg *config.Config, log zerolog.Logger, opt Options) error {
	p := tea.NewProgram(NewModel(cfg, log, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// loadCmd performs the fetch (or snapshot read) off the UI loop.
func (m Model) loadCmd() tea.Cmd {
	cfg, log, opt := m.cfg, m.log, m.opt
	return func() tea.Msg {
		store := cachestore.New(opt.CacheDir)
		if opt.Cached {
			items, err := store.Load()
			if err != nil {
				return errMsg{err}
			}
			return itemsMsg(items)
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()
		items, err := fetch.New(cfg.Endpoint, cfg.Timeout, log).Items(ctx)
		if err != nil {
			return errMsg{err}
		}
		if err := store.Save(items); err != nil {
			log.Warn().Err(err).Msg("could not write snapshot")
		}
		return itemsMsg(items)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case itemsMsg:
		m.pgr = pager.New(msg, m.cfg.PageSize, pager.WithClamp(!m.opt.NoClamp))
		m.pag.SetTotalPages(max(m.pgr.TotalPages(), 1))
		m.pag.Page = 0
		m.state = stateReady
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateFailed
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.state {
		case stateFailed:
			if key.Matches(msg, m.keys.Retry) {
				m.state = stateLoading
				m.err = nil
				return m, tea.Batch(m.spin.Tick, m.loadCmd())
			}
		case stateReady:
			return m.updateReady(msg)
		}
	}
	return m, nil
}

func (m Model) updateReady(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.pgr.Prev()
	case key.Matches(msg, m.keys.Next):
		m.pgr.Next()
	case key.Matches(msg, m.keys.First):
		m.pgr.First()
	case key.Matches(msg, m.keys.Last):
		m.pgr.Last()
	case key.Matches(msg, m.keys.Retry):
		m.state = stateLoading
		return m, tea.Batch(m.spin.Tick, m.loadCmd())
	}
	m.syncPaginator()
	return m, nil
}

// syncPaginator mirrors the pager position onto the dots. Past-the-end pages
// (clamping off) have no dot; the footer text still shows the real position.
func (m *Model) syncPaginator() {
	if m.pgr == nil {
		return
	}
	if total := m.pgr.TotalPages(); total > 0 && m.pgr.Page() <= total {
		m.pag.Page = m.pgr.Page() - 1
	}
}

// Pager exposes the current pager, for tests.
func (m Model) Pager() *pager.Pager { return m.pgr }

// Err exposes the load error, for tests.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return ui.PanelString(fmt.Sprintf("%s fetching items…", m.spin.View()))

	case stateFailed:
		lines := []string{
			ui.ErrorStyle.Render("✖ fetch failed"),
			fetch.Describe(m.err),
			"",
			ui.HelpStyle.Render("r refetch · q quit"),
		}
		return ui.PanelString(strings.Join(lines, "\n"))
	}
	return ui.PanelString(m.viewReady())
}

func (m Model) viewReady() string {
	header := fmt.Sprintf("%s   %s %d",
		ui.TitleStyle.Render("Items"),
		ui.AccentStyle.Render("Total"), m.pgr.Len(),
	)

	var b strings.Builder
	b.WriteString(header + "\n\n")

	w := m.pgr.Window()
	if len(w) == 0 {
		b.WriteString(ui.MutedStyle.Render("no items") + "\n")
	}
	first, _ := m.pgr.Bounds()
	for i, it := range w {
		idx := fmt.Sprintf("%3d.", first+i)
		title := ui.Truncate(it.Title, max(m.width-10, 20))
		b.WriteString(fmt.Sprintf("%s %s\n", ui.MutedStyle.Render(idx), title))
	}

	b.WriteString("\n")
	if total := m.pgr.TotalPages(); total > 0 && m.pgr.Page() <= total {
		b.WriteString(m.pag.View() + "  ")
	}
	b.WriteString(ui.HelpStyle.Render(fmt.Sprintf("page %d/%d", m.pgr.Page(), m.pgr.TotalPages())))
	b.WriteString("\n" + ui.HelpStyle.Render("←/p prev · →/n next · g/G first/last · r refetch · q quit"))
	return b.String()
}
