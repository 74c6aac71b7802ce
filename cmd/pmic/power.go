package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp192"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var powerCmd = cli.Command{
	Name: "power",
	Subcommands: []*cli.Command{
		&powerStatusCmd,
	},
}

var powerStatusCmd = cli.Command{
	Name:  "status",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
		defer cancel()
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeBus()
		dev := axp192.New(bus)
		power, err := dev.GetPowerStatus(ctx)
		if err != nil {
			return console.Exit(1, "could not read power status: %s", console.Red(err))
		}
		charge, err := dev.GetChargeStatus(ctx)
		if err != nil {
			return console.Exit(1, "could not read charge status: %s", console.Red(err))
		}
		console.PInfof(console.PictoPlug, "ACIN present: %s  VBUS present: %s",
			onOff(power.ACINPresent), onOff(power.VBUSPresent))
		console.PInfof(console.PictoBattery, "battery present: %s  charging: %s",
			onOff(charge.BatteryPresent), onOff(charge.ChargeInProgress))
		if charge.OverTemperature {
			console.Warnf("chip over temperature")
		}
		if charge.CurrentBelowTarget {
			console.Warnf("charge current below configured target")
		}
		return nil
	},
}

func onOff(value bool) string {
	if value {
		return console.Green("yes")
	}
	return console.White("no")
}
