package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gymkeeper/internal/config"
	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/dmitrijs2005/gymkeeper/internal/members"
	"github.com/dmitrijs2005/gymkeeper/internal/members/textfile"
)

type App struct {
	config *config.Config
	store  *members.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the member store described by c. Malformed lines in the data
// file are reported through log and skipped.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo := textfile.NewRepository(c.DataFile, log)

	store, err := members.NewStore(ctx, repo)
	if err != nil {
		log.Error(ctx, "error opening member store", "err", err)
		return nil, err
	}
	log.Info(ctx, "member store ready", "file", repo.Path(), "members", store.Len())

	return &App{
		config: c,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run shows the menu until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Gym Management System")
	runMenu(ctx, a, a.reader, a.out)
}
