package cli

import (
	"context"
	"fmt"
)

// Stats prints the site counters.
func (a *App) Stats(ctx context.Context) error {
	s, err := a.stats.Get(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Total views:   %d\n", s.TotalViews)
	fmt.Fprintf(a.out, "Total diaries: %d\n", s.TotalDiaries)
	fmt.Fprintf(a.out, "Total users:   %d\n", s.TotalUsers)
	return nil
}
