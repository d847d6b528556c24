package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/Guliveer/zen/internal/config"
	"github.com/Guliveer/zen/internal/platform"
	"github.com/Guliveer/zen/internal/startup"
)

type app struct {
	mgr *startup.Manager
	cfg *config.Config
	out io.Writer
}

func (a *app) run(args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return a.list(rest)
	case "enable", "disable":
		id, err := oneArg(cmd, rest)
		if err != nil {
			return err
		}
		if err := a.mgr.ToggleByID(id, cmd == "enable"); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%sd %s\n", cmd, id)
		return nil
	case "create":
		return a.create(rest)
	case "delete":
		id, err := oneArg(cmd, rest)
		if err != nil {
			return err
		}
		if err := a.mgr.DeleteByID(id); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "deleted %s\n", id)
		return nil
	case "info":
		return a.info()
	case "config":
		if len(rest) != 2 || rest[0] != "init" {
			return fmt.Errorf("usage: zen config init <path>")
		}
		if err := config.WriteConfig(a.cfg, rest[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "wrote %s\n", rest[1])
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func oneArg(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: zen %s <id>", cmd)
	}
	return args[0], nil
}

func (a *app) list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	asJSON := fs.Bool("json", false, "Print entries as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries := a.mgr.List()
	if *asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	renderEntries(a.out, entries)
	return nil
}

func (a *app) create(args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	name := fs.String("name", "", "Display name")
	command := fs.String("exec", "", "Command to launch at login")
	comment := fs.String("comment", "", "Description (ignored by the startup folder)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := a.mgr.Create(*name, *command, *comment)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created %s\n", path)
	return nil
}

func (a *app) info() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	host, err := platform.Describe(ctx)
	if err != nil {
		return err
	}
	renderInfo(a.out, host, a.mgr.Platform(), a.mgr.Dir())
	return nil
}
