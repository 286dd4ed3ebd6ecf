package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timediary/internal/common"
)

// Comment appends a comment to a diary. Requires a logged-in user.
func (a *App) Comment(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in before commenting.")
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: comment <id>")
		return nil
	}

	content, err := GetMultiline(a.reader, "Enter your comment", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if content == "" {
		fmt.Fprintln(a.out, "Comment must not be empty.")
		return nil
	}

	if _, err := a.content.AddComment(ctx, args[0], a.currentUser, content); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Fprintf(a.out, "No diary with id %q.\n", args[0])
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Comment posted!")
	return nil
}
