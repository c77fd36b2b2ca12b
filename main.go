package main

import (
	"os"

	"github.com/netchain-network/netchain-go/config"
	"github.com/netchain-network/netchain-go/log"
	"github.com/netchain-network/netchain-go/node"
	"gopkg.in/urfave/cli.v1"
)

var version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "netchain-go"
	app.Version = version
	app.Usage = "NetChain node core: PoI validator selection and ledger state transition"
	app.Flags = []cli.Flag{
		config.CfgFileFlag,
		config.VerbosityFlag,
		config.EpochFlag,
	}

	app.Action = func(ctx *cli.Context) error {
		cfg := config.MakeConfig(ctx)

		n, err := node.NewNode(cfg)
		if err != nil {
			return err
		}
		n.Start()
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Crit("node failed", "err", err)
	}
}
