package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/library/internal/library"
	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/ui"
)

const indexHint = "Hint: run `library ls` to see valid indexes"

func newListCommand(opts *RootOptions) *cobra.Command {
	var group bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List books",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := opts.openLibrary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), listPanel(lib.List(), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group by read / not read")
	return cmd
}

func newAddCommand(opts *RootOptions) *cobra.Command {
	var (
		author, pages string
		read          bool
	)
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a book",
		Example: `  library add The Hobbit --author "J.R.R. Tolkien" --pages 304 --read
  library add "Blood Meridian" --author "Cormac McCarthy"`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return usagef("", "add: empty title")
			}
			lib, err := opts.openLibrary()
			if err != nil {
				return err
			}
			b := model.NewBook(title, strings.TrimSpace(author), model.ParsePages(strings.TrimSpace(pages)), read)
			if err := lib.Add(b); err != nil {
				return fmt.Errorf("add: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added %q as #%d", title, lib.Len()))
			return nil
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "author")
	cmd.Flags().StringVar(&pages, "pages", "", "number of pages")
	cmd.Flags().BoolVar(&read, "read", false, "mark as already read")
	return cmd
}

func newReadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "read <index>",
		Short: "Toggle the read flag of the book at a 1-based index",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, i, err := opts.openAt("read", args[0])
			if err != nil {
				return err
			}
			b := lib.At(i)
			if _, err := lib.SetIsRead(i, !b.IsRead); err != nil {
				return fmt.Errorf("read: %w", err)
			}
			state := "not read"
			if b.IsRead {
				state = "read"
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("%q marked %s", b.Title, state))
			return nil
		},
	}
}

func newRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <index>",
		Aliases: []string{"remove"},
		Short:   "Remove the book at a 1-based index",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, i, err := opts.openAt("rm", args[0])
			if err != nil {
				return err
			}
			title := lib.At(i).Title
			if _, err := lib.RemoveAt(i); err != nil {
				return fmt.Errorf("rm: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed %q", title))
			return nil
		},
	}
}

func newResetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the collection with the starter books",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := opts.openLibrary()
			if err != nil {
				return err
			}
			if err := lib.InitializeSeed(); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("reset to %d books", lib.Len()))
			return nil
		},
	}
}

// openAt loads the library and converts a 1-based user index to a position.
func (o *RootOptions) openAt(op, arg string) (*library.Library, int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return nil, 0, usagef("", "%s: not a number: %s", op, arg)
	}
	lib, err := o.openLibrary()
	if err != nil {
		return nil, 0, err
	}
	if n < 1 || n > lib.Len() {
		return nil, 0, usagef(indexHint, "index out of range: have %d, got %d", lib.Len(), n)
	}
	return lib, n - 1, nil
}
