package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/nodetype"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Viewer styles
var (
	viewerDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	viewerFloorStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(4).Align(lipgloss.Right)
	viewerStatusStyle = lipgloss.NewStyle().Foreground(colorGreen)
	viewerErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	viewerLockStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// MapViewModel - Interactive map browser and editor
// =============================================================================

// saveFunc persists the document being viewed.
type saveFunc func(document.Document) error

// MapViewModel is the bubbletea model for browsing and editing a map.
//
// The cursor is a (floor, index) pair. Floors are drawn boss first so
// moving up climbs towards the boss.
type MapViewModel struct {
	Doc    document.Document
	Floor  int
	Index  int
	Dirty  bool
	Status string
	Err    error

	editor *editor.Editor
	save   saveFunc
	themes []string
}

// NewMapViewModel creates a viewer positioned on the start room.
func NewMapViewModel(d document.Document, ed *editor.Editor, save saveFunc) MapViewModel {
	return MapViewModel{
		Doc:    d,
		editor: ed,
		save:   save,
		themes: nodetype.Themes(),
	}
}

func (m MapViewModel) Init() tea.Cmd {
	return nil
}

// Selected returns the room under the cursor.
func (m MapViewModel) Selected() (runmap.Node, bool) {
	if m.Floor < 0 || m.Floor >= len(m.Doc.MapNodes) {
		return runmap.Node{}, false
	}
	floor := m.Doc.MapNodes[m.Floor]
	if m.Index < 0 || m.Index >= len(floor) {
		return runmap.Node{}, false
	}
	return floor[m.Index], true
}

func (m MapViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.moveFloor(1)
	case "down", "j":
		m.moveFloor(-1)
	case "left", "h":
		if m.Index > 0 {
			m.Index--
		}
	case "right", "l":
		if m.Floor < len(m.Doc.MapNodes) && m.Index < len(m.Doc.MapNodes[m.Floor])-1 {
			m.Index++
		}
	case " ", "x":
		m.editSelected("lock", func(d document.Document, n runmap.Node) (document.Document, error) {
			return m.editor.SetLocked(d, n.ID, !n.IsLocked)
		})
	case "p":
		m.editSelected("promote", func(d document.Document, n runmap.Node) (document.Document, error) {
			return m.editor.Promote(d, n.ID)
		})
	case "d":
		m.editSelected("delete", func(d document.Document, n runmap.Node) (document.Document, error) {
			return m.editor.Delete(d, n.ID)
		})
	case "g":
		m.apply("regenerated", m.editor.Generate)
	case "r":
		m.apply("relaid out", func(d document.Document) (document.Document, error) {
			return m.editor.UpdateLayout(d), nil
		})
	case "t":
		m.apply("theme", func(d document.Document) (document.Document, error) {
			return m.editor.ApplyTheme(d, m.nextTheme())
		})
	case "s":
		if err := m.save(m.Doc); err != nil {
			m.Err = err
			return m, nil
		}
		m.Dirty, m.Err, m.Status = false, nil, "saved"
	}
	return m, nil
}

func (m *MapViewModel) moveFloor(delta int) {
	next := m.Floor + delta
	if next < 0 || next >= len(m.Doc.MapNodes) {
		return
	}
	m.Floor = next
	m.clampCursor()
}

func (m *MapViewModel) clampCursor() {
	m.Floor = max(0, min(m.Floor, len(m.Doc.MapNodes)-1))
	if m.Floor < 0 || len(m.Doc.MapNodes) == 0 {
		m.Floor, m.Index = 0, 0
		return
	}
	m.Index = max(0, min(m.Index, len(m.Doc.MapNodes[m.Floor])-1))
}

func (m *MapViewModel) editSelected(action string, fn func(document.Document, runmap.Node) (document.Document, error)) {
	n, ok := m.Selected()
	if !ok {
		m.Err = errors.New(errors.ErrCodeNodeNotFound, "no room selected")
		return
	}
	m.apply(fmt.Sprintf("%s #%d", action, n.ID), func(d document.Document) (document.Document, error) {
		return fn(d, n)
	})
}

func (m *MapViewModel) apply(status string, fn func(document.Document) (document.Document, error)) {
	d, err := fn(m.Doc)
	if err != nil {
		m.Err = err
		return
	}
	m.Doc, m.Dirty, m.Err, m.Status = d, true, nil, status
	m.clampCursor()
}

func (m MapViewModel) nextTheme() string {
	if len(m.themes) == 0 {
		return ""
	}
	i := slices.Index(m.themes, m.Doc.VisualConfig.Theme)
	return m.themes[(i+1)%len(m.themes)]
}

func (m MapViewModel) View() string {
	var b strings.Builder

	title := "Run Map"
	if m.Dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(viewerDimStyle.Render("↑/↓ floor  ←/→ room  space lock  p promote  d delete  g regenerate  r relayout  t theme  s save  q quit"))
	b.WriteString("\n\n")

	for r := len(m.Doc.MapNodes) - 1; r >= 0; r-- {
		b.WriteString(viewerFloorStyle.Render(strconv.Itoa(r)))
		b.WriteString(viewerDimStyle.Render(" │ "))
		for i, n := range m.Doc.MapNodes[r] {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(m.roomBadge(n, r == m.Floor && i == m.Index))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if n, ok := m.Selected(); ok {
		b.WriteString(m.roomDetails(n))
		b.WriteString("\n")
	}

	switch {
	case m.Err != nil:
		b.WriteString(viewerErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
	case m.Status != "":
		b.WriteString(viewerStatusStyle.Render(iconSuccess + " " + m.Status))
	}
	return b.String()
}

// roomBadge draws a room as its type's initial on the type color.
func (m MapViewModel) roomBadge(n runmap.Node, selected bool) string {
	reg := m.Doc.NodeTypes
	label := strings.ToUpper(initial(reg.Name(n.Type)))
	if n.IsLocked {
		label += "*"
	} else {
		label += " "
	}
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorWhite).
		Background(lipgloss.Color(reg.Color(n.Type, "#64748b")))
	if selected {
		style = style.Bold(true).Underline(true).Reverse(true)
	}
	return style.Render(label)
}

func (m MapViewModel) roomDetails(n runmap.Node) string {
	ids := make([]string, len(n.Connections))
	for i, id := range n.Connections {
		ids[i] = "#" + strconv.Itoa(id)
	}
	next := "none"
	if len(ids) > 0 {
		next = strings.Join(ids, " ")
	}

	line := fmt.Sprintf("#%d %s  floor %d  icon %s  → %s",
		n.ID, StyleHighlight.Render(m.Doc.NodeTypes.Name(n.Type)), n.Row, n.IconClass, next)
	if n.IsLocked {
		line += "  " + viewerLockStyle.Render("locked")
	}
	return line
}

func initial(s string) string {
	for _, r := range s {
		return string(r)
	}
	return "?"
}
