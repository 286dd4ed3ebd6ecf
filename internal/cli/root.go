package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.currentUser == nil {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", a.currentUser.Username)
}

func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to timediary (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
