package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/somohq/somo/core/academic"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db  *sql.DB
	svc *academic.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate - apply pending database migrations")
	fmt.Println("  seed    - load a demo data set (universities, faculties, courses...)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "seed":
		return cli.seed()
	default:
		cli.printUsage()
		return errHelp
	}
}
