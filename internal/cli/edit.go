package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/io"
	"github.com/matzehuels/drawset/pkg/object"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit attributes of selected objects interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			objects, err := loadDocument(path)
			if err != nil {
				return err
			}
			m := NewEditorModel(objects, func(objs []object.Object) error {
				return io.WriteFile(path, objs)
			})
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if em, ok := final.(EditorModel); ok && em.Dirty {
				printWarning("Quit with unsaved changes")
			}
			return nil
		},
	}
}

// =============================================================================
// EditorModel - Interactive multi-selection editor
// =============================================================================

// EditorModel is the bubbletea model of the attribute editor. The cursor
// moves over objects; the selection is the set of objects with the
// selected flag, and every edit applies to the whole selection.
type EditorModel struct {
	Objects []object.Object
	Cursor  int
	Kind    attr.Kind
	Editing bool
	Input   string
	Status  string
	Dirty   bool
	Height  int
	Offset  int

	save func([]object.Object) error
}

// NewEditorModel creates an editor over objects. save is called on "w".
func NewEditorModel(objects []object.Object, save func([]object.Object) error) EditorModel {
	return EditorModel{
		Objects: objects,
		Kind:    attr.Shape,
		Height:  15,
		save:    save,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Editing {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EditorModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.Status = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Objects)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "left", "h", "shift+tab":
		m.Kind = attr.Kind((int(m.Kind) + attr.Total - 1) % attr.Total)
	case "right", "l", "tab":
		m.Kind = attr.Kind((int(m.Kind) + 1) % attr.Total)
	case " ":
		if len(m.Objects) > 0 {
			o := &m.Objects[m.Cursor]
			o.Flags = o.Flags.With(object.FlagSelected, !o.IsSelected())
		}
	case "a":
		object.SetSelected(m.Objects, object.All(m.Objects), true)
	case "n":
		object.SetSelected(m.Objects, object.All(m.Objects), false)
	case "enter", "e":
		if len(object.Selected(m.Objects)) == 0 {
			m.Status = "nothing selected"
			return m, nil
		}
		m.Editing = true
		m.Input = m.current()
		if m.Input == mixedValue {
			m.Input = ""
		}
	case "r":
		m.apply("")
	case "d":
		sel := object.Selected(m.Objects)
		object.SetSelected(m.Objects, sel, false)
		m.Objects = object.Duplicate(m.Objects, sel)
		m.Dirty = m.Dirty || len(sel) > 0
		m.Status = fmt.Sprintf("duplicated %d objects", len(sel))
	case "x":
		sel := object.Selected(m.Objects)
		m.Objects = object.Remove(m.Objects, sel)
		if m.Cursor >= len(m.Objects) {
			m.Cursor = max(len(m.Objects)-1, 0)
		}
		m.Dirty = m.Dirty || len(sel) > 0
		m.Status = fmt.Sprintf("removed %d objects", len(sel))
	case "w":
		if m.save == nil {
			return m, nil
		}
		if err := m.save(m.Objects); err != nil {
			m.Status = "save failed: " + err.Error()
			return m, nil
		}
		m.Dirty = false
		m.Status = "saved"
	}
	return m, nil
}

func (m EditorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.Editing = false
		m.Input = ""
	case tea.KeyEnter:
		m.Editing = false
		m.apply(m.Input)
		m.Input = ""
	case tea.KeyBackspace:
		if r := []rune(m.Input); len(r) > 0 {
			m.Input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.Input += " "
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
	}
	return m, nil
}

// apply sets the current attribute on the selection and flushes it.
func (m *EditorModel) apply(text string) {
	sel := object.Selected(m.Objects)
	if len(sel) == 0 {
		m.Status = "nothing selected"
		return
	}
	err := errors.Join(
		object.Set(m.Objects, sel, m.Kind, text),
		object.Update(m.Objects, sel),
	)
	m.Dirty = true
	if err != nil {
		m.Status = "error: " + firstLine(err.Error())
		return
	}
	if text == "" {
		m.Status = fmt.Sprintf("reset %s on %d objects", m.Kind, len(sel))
		return
	}
	m.Status = fmt.Sprintf("set %s on %d objects", m.Kind, len(sel))
}

// current is the value of the attribute across the selection.
func (m EditorModel) current() string {
	return object.GetStringValue(m.Objects, object.Selected(m.Objects), m.Kind, mixedValue)
}

func (m EditorModel) View() string {
	var b strings.Builder

	title := "Edit"
	if m.Dirty {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  space select  a/n all/none  ←/→ attribute  ⏎ edit  r reset  d dup  x remove  w save  q quit"))
	b.WriteString("\n\n")

	selected := len(object.Selected(m.Objects))
	value := StyleValue.Render(m.current())
	if m.Editing {
		value = listSelectedStyle.Render(m.Input + "▏")
	}
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		StyleDim.Render(fmt.Sprintf("%s [%d selected]:", m.Kind, selected)),
		value,
		StyleDim.Render(m.Kind.Type().String())))

	end := min(m.Offset+m.Height, len(m.Objects))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		o := &m.Objects[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := " "
		if o.IsSelected() {
			mark = iconSuccess
		}
		v := o.Values()
		rows = append(rows, []string{
			cursor + mark,
			fmt.Sprint(i),
			o.Label,
			o.Effective(m.Kind).String(),
			fmt.Sprint(v.SetCount()),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Label", m.Kind.Name(), "Set").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Objects) {
				return lipgloss.NewStyle()
			}
			if idx == m.Cursor {
				return listSelectedStyle
			}
			if !m.Objects[idx].IsSelected() {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Status != "" {
		style := listDimStyle
		if strings.HasPrefix(m.Status, "error") || strings.HasPrefix(m.Status, "save failed") {
			style = listErrorStyle
		}
		b.WriteString(style.Render("  " + m.Status))
	}
	return b.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
