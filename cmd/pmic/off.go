package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp192"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var offCmd = cli.Command{
	Name:  "off",
	Usage: "power the chip and everything it supplies off",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		answer, err := console.YesOrNo("power off the PMIC? this cuts all rails")
		if err != nil {
			return console.Exit(1, "could not read answer: %v", err)
		}
		if answer != console.Yes {
			console.PInfof(console.PictoStop, "aborted")
			return nil
		}
		ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
		defer cancel()
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeBus()
		err = axp192.New(bus).Shutdown(ctx)
		if err != nil {
			return console.Exit(1, "could not shut down: %s", console.Red(err))
		}
		return nil
	},
}
