package cli

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mrlokans/studygroups/internal/config"
	"github.com/mrlokans/studygroups/internal/entrypoint"
	"github.com/mrlokans/studygroups/internal/storage"
)

// SetupCommand connects to the configured database and synchronizes the
// schema without starting the server.
type SetupCommand struct {
	Reset bool
	cfg   *config.Config
}

func NewSetupCommand(cfg *config.Config) *SetupCommand {
	return &SetupCommand{cfg: cfg, Reset: cfg.Database.ResetOnSetup}
}

func (cmd *SetupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)

	fs.BoolVar(&cmd.Reset, "reset", cmd.Reset, "Drop users, study groups, decks and flashcards before synchronizing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s setup [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Connect to the database named by DATABASE_DRIVER and create or update its tables.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SetupCommand) Run() error {
	dbCfg := cmd.cfg.Database
	dbCfg.ResetOnSetup = cmd.Reset

	backend, err := entrypoint.OpenBackend(dbCfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := storage.NewFacade(backend.Driver).Setup(); err != nil {
		return err
	}

	log.Printf("Database %s is ready", dbCfg.Driver)
	return nil
}
