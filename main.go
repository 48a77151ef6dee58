package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/bibek0707/finance-tracker1/internal/command"
	"github.com/bibek0707/finance-tracker1/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	command.Register(commander, cfg, os.Stdin, os.Stdout)

	flag.Parse()
	if flag.NArg() == 0 {
		// no command starts the interactive tracker
		if err = flag.CommandLine.Parse([]string{"run"}); err != nil {
			logrus.Fatal(err)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
