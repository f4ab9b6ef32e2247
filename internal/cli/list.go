package cli

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/ui"
)

const maxLineWidth = 80

func stats(books []*model.Book) (read, unread int) {
	for _, b := range books {
		if b.IsRead {
			read++
		} else {
			unread++
		}
	}
	return
}

// listPanel renders the collection with a header and progress bar.
func listPanel(books []*model.Book, group bool) string {
	t := ui.Current()
	r, u := stats(books)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Library"),
		t.Success.Render(t.SymRead), r,
		t.Pending.Render(t.SymUnread), u,
		t.Accent.Render("Total"), len(books),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(r, r+u, 28)), ""}
	if group {
		lines = append(lines, groupLines(books)...)
	} else {
		lines = append(lines, bookLines(books, func(*model.Book) bool { return true })...)
	}
	lines = append(lines, "", t.Muted.Render(`Tip: add with `+"`"+`library add "Dune" --author "Frank Herbert" --pages 412`+"`"))
	return ui.Panel(lines)
}

// bookLines renders the books keep selects, numbered by their position in
// the whole collection so the numbers work with read and rm.
func bookLines(books []*model.Book, keep func(*model.Book) bool) []string {
	t := ui.Current()
	var out []string
	for i, b := range books {
		if !keep(b) {
			continue
		}
		style := t.Muted
		if b.IsRead {
			style = t.Success
		}
		text := b.Title
		if b.Author != "" {
			text += " by " + b.Author
		}
		if !b.Pages.IsZero() {
			text += fmt.Sprintf(" (%s pages)", b.Pages)
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)),
			style.Render(t.Box(b.IsRead)),
			ansi.Truncate(text, maxLineWidth, "..."),
		))
	}
	if len(out) == 0 {
		return []string{t.Muted.Render("(none)")}
	}
	return out
}

func groupLines(books []*model.Book) []string {
	t := ui.Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Not read"))
	lines = append(lines, bookLines(books, func(b *model.Book) bool { return !b.IsRead })...)
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Read"))
	lines = append(lines, bookLines(books, func(b *model.Book) bool { return b.IsRead })...)
	return lines
}
