package config

import "gopkg.in/urfave/cli.v1"

var (
	CfgFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "JSON configuration file",
	}
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Log verbosity, 0 (crit) to 4 (debug)",
		Value: 3,
	}
	EpochFlag = cli.Uint64Flag{
		Name:  "epoch",
		Usage: "Epoch number to initialize with",
	}
)
