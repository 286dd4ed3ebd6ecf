package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/timediary/internal/models"
)

func (a *App) printDiaryLine(d *models.Diary) {
	fmt.Fprintf(a.out, "[%s] %s — %s (%s, %d views, %d comments)\n",
		d.ID, d.Title, d.Author, d.Category, d.Views, len(d.Comments))
	fmt.Fprintf(a.out, "     %s\n", d.Excerpt)
}

// List prints the latest diaries, optionally filtering by category label.
func (a *App) List(ctx context.Context, args []string) error {

	var (
		result []models.Diary
		err    error
	)

	if len(args) > 0 {
		category := strings.Join(args, " ")
		result, err = a.content.GetByCategory(ctx, category)
	} else {
		result, err = a.content.List(ctx)
	}
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if len(result) == 0 {
		fmt.Fprintln(a.out, "No diaries found.")
		return nil
	}

	if a.config.ListLimit > 0 && len(result) > a.config.ListLimit {
		result = result[:a.config.ListLimit]
	}
	for i := range result {
		a.printDiaryLine(&result[i])
	}
	return nil
}

// Popular prints the most viewed diaries.
func (a *App) Popular(ctx context.Context) error {
	result, err := a.content.Popular(ctx, a.config.ListLimit)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	for i := range result {
		a.printDiaryLine(&result[i])
	}
	return nil
}

// Categories prints the fixed category list.
func (a *App) Categories(ctx context.Context) error {
	for _, c := range models.Categories() {
		fmt.Fprintf(a.out, "%-8s %s — %s\n", c.ID, c.Name, c.Description)
	}
	return nil
}
