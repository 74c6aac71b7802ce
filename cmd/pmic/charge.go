package main

import (
	"context"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp192"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var chargeCmd = cli.Command{
	Name: "charge",
	Subcommands: []*cli.Command{
		&chargeTargetCmd,
		&chargeCurrentCmd,
		&chargeEnableCmd,
		&chargeDisableCmd,
	},
}

var chargeTargetCmd = cli.Command{
	Name:      "target",
	Usage:     "set charge target voltage (4100, 4150, 4200 or 4360 mV)",
	ArgsUsage: "<mV>",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(1, "expected 1 argument, got %d", c.NArg())
		}
		mV, err := strconv.Atoi(c.Args().Get(0))
		if err != nil {
			return console.Exit(1, "could not parse voltage: %v", err)
		}
		ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
		defer cancel()
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeBus()
		err = axp192.New(bus).SetChargeTargetVoltage(ctx, mV)
		if err != nil {
			return console.Exit(1, "could not set charge target: %s", console.Red(err))
		}
		console.PInfof(console.PictoBattery, "charge target set to %d mV", mV)
		return nil
	},
}

var chargeCurrentCmd = cli.Command{
	Name:      "current",
	Usage:     "set charge current in milliamps ([100, 1320], 80 mA steps)",
	ArgsUsage: "<mA>",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return console.Exit(1, "expected 1 argument, got %d", c.NArg())
		}
		mA, err := strconv.Atoi(c.Args().Get(0))
		if err != nil {
			return console.Exit(1, "could not parse current: %v", err)
		}
		ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
		defer cancel()
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeBus()
		err = axp192.New(bus).SetChargeCurrent(ctx, mA)
		if err != nil {
			return console.Exit(1, "could not set charge current: %s", console.Red(err))
		}
		console.PInfof(console.PictoBattery, "charge current set to %d mA", mA)
		return nil
	},
}

var chargeEnableCmd = cli.Command{
	Name:  "enable",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		return switchCharging(c, true)
	},
}

var chargeDisableCmd = cli.Command{
	Name:  "disable",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		return switchCharging(c, false)
	},
}

func switchCharging(c *cli.Context, enable bool) error {
	ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
	defer cancel()
	bus, closeBus, err := openBus(c)
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	defer closeBus()
	dev := axp192.New(bus)
	if enable {
		err = dev.EnableCharging(ctx)
	} else {
		err = dev.DisableCharging(ctx)
	}
	if err != nil {
		return console.Exit(1, "could not switch charger: %s", console.Red(err))
	}
	state := "enabled"
	if !enable {
		state = "disabled"
	}
	console.PInfof(console.PictoBattery, "charging %s", state)
	return nil
}
