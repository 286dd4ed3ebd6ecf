package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timediary/internal/common"
)

// Show opens a diary, printing its body and comments. Opening counts a view.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	diary, err := a.content.Open(ctx, args[0])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No diary with id %q.\n", args[0])
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "%s\n", diary.Title)
	fmt.Fprintf(a.out, "%s · %s · %s · %d views\n\n", diary.Author, diary.Date, diary.Category, diary.Views)
	fmt.Fprintf(a.out, "%s\n", diary.Content)

	if len(diary.Comments) == 0 {
		fmt.Fprintln(a.out, "\nNo comments yet.")
		return nil
	}

	fmt.Fprintf(a.out, "\nComments (%d):\n", len(diary.Comments))
	for _, c := range diary.Comments {
		fmt.Fprintf(a.out, "  %s (%s): %s\n", c.Username, c.CreatedAt, c.Content)
	}
	return nil
}
