package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/library/internal/dom"
	"github.com/idilsaglam/library/internal/ui"
	"github.com/idilsaglam/library/internal/view"
)

const (
	maxCardWidth = 48
	cardHeight   = 6 // 4 content lines plus the border
)

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	header := a.renderHeader()
	footer := a.renderFooter()
	height := a.libraryHeight()

	var body string
	if a.view.State() == view.ModalVisible {
		body = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderForm()),
			"",
			clipLines(a.renderLibrary(height), height),
		)
	} else {
		body = a.renderLibrary(height)
	}
	return strings.Join([]string{header, body, footer}, "\n")
}

// libraryHeight is the number of lines left for the library once the
// header, footer and (when open) the form are drawn.
func (a *App) libraryHeight() int {
	h := a.height - lipgloss.Height(a.renderHeader()) - lipgloss.Height(a.renderFooter())
	if a.view.State() == view.ModalVisible {
		h -= lipgloss.Height(a.renderForm()) + 1
	}
	return h
}

// visibleCards is how many unit cards fit in height lines, leaving room for
// the scroll markers and the add slot.
func visibleCards(height int) int {
	return max(1, (height-3)/cardHeight)
}

// scroll moves the window of drawn cards so the cursor stays on screen.
func (a *App) scroll() {
	a.clampCursor()
	n := len(a.view.Units())
	visible := visibleCards(a.libraryHeight())
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+visible && a.cursor < n {
		a.offset = a.cursor - visible + 1
	}
	if a.offset > n-visible {
		a.offset = max(0, n-visible)
	}
}

func (a *App) renderHeader() string {
	t := ui.Current()
	read, unread := 0, 0
	for _, b := range a.lib.List() {
		if b.IsRead {
			read++
		} else {
			unread++
		}
	}
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Library"),
		t.Success.Render(t.SymRead), read,
		t.Pending.Render(t.SymUnread), unread,
		t.Accent.Render("Total"), read+unread,
	)
	return title + "\n" + t.Muted.Render(ui.ProgressBar(read, read+unread, 28))
}

func (a *App) renderFooter() string {
	var line string
	if a.view.State() == view.ModalVisible {
		line = a.help.View(a.formKeys)
	} else {
		line = a.help.View(a.listKeys)
	}
	if err := a.view.LastError(); err != nil {
		line = ui.Current().Error.Render("✖ "+err.Error()) + "\n" + line
	}
	return helpStyle.Render(line)
}

func (a *App) cardWidth() int {
	w := a.width - 4
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderLibrary draws the units that fit in height lines, starting at the
// scroll offset Update maintains, followed by the add slot.
func (a *App) renderLibrary(height int) string {
	units := a.view.Units()
	visible := visibleCards(height)
	offset := min(a.offset, max(0, len(units)-visible))

	var parts []string
	if offset > 0 {
		parts = append(parts, helpStyle.Render(fmt.Sprintf("  ↑ %d more", offset)))
	}
	end := min(len(units), offset+visible)
	for i := offset; i < end; i++ {
		parts = append(parts, a.renderUnit(units[i], i == a.cursor))
	}
	if rest := len(units) - end; rest > 0 {
		parts = append(parts, helpStyle.Render(fmt.Sprintf("  ↓ %d more", rest)))
	}
	if len(units) == 0 {
		parts = append(parts, ui.Current().Muted.Render("  no books yet"))
	}
	parts = append(parts, a.renderAddSlot(a.cursor == len(units)))

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if a.page.Library.Style("filter") != "" {
		out = unreadStyle.Render(ansi.Strip(out))
	}
	return out
}

func (a *App) renderUnit(n *dom.Node, selected bool) string {
	u, ok := a.view.UnitFor(n)
	if !ok {
		return ""
	}
	t := ui.Current()
	inner := a.cardWidth() - 4

	title := ansi.Truncate(u.Title.Text, inner, "…")
	if selected {
		title = selectedStyle.Render(title)
	} else {
		title = t.Title.Render(title)
	}
	author := ansi.Truncate(u.Author.Text, inner, "…")
	pages := t.Muted.Render(ansi.Truncate(u.Pages.Text, inner, "…"))

	box := t.Muted.Render(t.Box(u.ReadToggle.Checked) + " not read")
	if u.ReadToggle.Checked {
		box = t.Success.Render(t.Box(true) + " read")
	}
	remove := t.Error.Render("[" + u.Remove.Text + "]")
	gap := inner - lipgloss.Width(box) - lipgloss.Width(remove)
	if gap < 1 {
		gap = 1
	}
	controls := box + strings.Repeat(" ", gap) + remove

	content := strings.Join([]string{title, author, pages, controls}, "\n")
	if n.HasClass(view.ClassNotRead) {
		content = unreadStyle.Render(content)
	}
	return cardStyle(selected).Width(a.cardWidth()).Render(content)
}

func (a *App) renderAddSlot(selected bool) string {
	label := " " + a.page.AddButton.Text + " Add book "
	if selected {
		return selectedStyle.Render(label)
	}
	return ui.Current().Accent.Render(label)
}

func (a *App) renderForm() string {
	t := ui.Current()
	labels := [fieldRead]string{"Title", "Author", "Pages"}

	lines := []string{t.Title.Render("New book"), ""}
	for i := range a.form.inputs {
		lines = append(lines, t.Muted.Render(labels[i]), a.form.inputs[i].View())
	}
	lines = append(lines, "")

	read := t.Box(a.page.ReadCheckbox.Checked) + " " + a.page.ReadLabel.Text
	if a.field == fieldRead {
		read = selectedStyle.Render(read)
	}
	lines = append(lines, read, "")

	submit := "[ " + a.page.Submit.Text + " ]"
	cancel := "[ " + a.page.Cancel.Text + " ]"
	switch a.field {
	case fieldSubmit:
		submit = selectedStyle.Render(submit)
	case fieldCancel:
		cancel = selectedStyle.Render(cancel)
	}
	lines = append(lines, submit+"  "+cancel)
	return modalStyle().Render(strings.Join(lines, "\n"))
}

func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
