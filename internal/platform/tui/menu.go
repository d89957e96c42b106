package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-supaplex/internal/core"
	"github.com/vovakirdan/tui-supaplex/internal/games/supaplex/levels"
	"github.com/vovakirdan/tui-supaplex/internal/storage"
)

// Game IDs the menu starts.
const (
	campaignGameID = "supaplex"
	practiceGameID = "supaplex_practice"
)

// menuChrome is the number of lines the menu uses around the list.
const menuChrome = 9

// MenuItem represents a selectable entry in the level picker.
type MenuItem struct {
	GameID    string
	LevelID   string // empty for the campaign
	Title     string
	Completed bool
	BestTicks uint64 // fastest finish, 0 if never finished
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	offset      int // first visible item
	width       int
	height      int
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects an entry
	openResults bool      // True if user pressed Tab for the results board
}

// NewMenuModel creates a level picker: the campaign first, then one practice
// entry per level. Completion marks come from the store when there is one.
func NewMenuModel(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items := make([]MenuItem, 0, len(lvls)+1)
	items = append(items, MenuItem{GameID: campaignGameID, Title: "Campaign"})

	completed := make(map[string]bool)
	if store != nil {
		if ids, err := store.CompletedLevels(); err == nil {
			for _, id := range ids {
				completed[id] = true
			}
		}
	}

	for _, lvl := range lvls {
		item := MenuItem{
			GameID:    practiceGameID,
			LevelID:   lvl.ID,
			Title:     fmt.Sprintf("%s  %s", lvl.ID, lvl.Name),
			Completed: completed[lvl.ID],
		}
		if item.Completed {
			if best, err := store.BestResult(lvl.ID); err == nil && best != nil {
				item.BestTicks = best.Ticks
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.scrollToCursor()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionResults:
		m.openResults = true
		return m, tea.Quit
	}

	m.scrollToCursor()
	return m, nil
}

// visibleRows returns how many list entries fit on screen.
func (m MenuModel) visibleRows() int {
	return core.Max(m.height-menuChrome, 3)
}

// scrollToCursor keeps the cursor inside the visible window.
func (m *MenuModel) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S U P A P L E X  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select the campaign or a level to practice", m.width))
	b.WriteString("\n\n")

	end := core.Min(m.offset+m.visibleRows(), len(m.items))
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		mark := "  "
		if item.Completed {
			mark = doneStyle.Render("✓ ")
		}
		best := ""
		if item.BestTicks > 0 {
			best = fmt.Sprintf("  (best %d ticks)", item.BestTicks)
		}

		b.WriteString(centerText(cursor+mark+item.Title+best, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the results board.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	LevelID      string
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(lvls, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarizes what the user chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.LevelID = m.Selected().LevelID
	}
	return result
}
