package main

import (
	"context"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp192"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var railCmd = cli.Command{
	Name: "rail",
	Subcommands: []*cli.Command{
		&railSetCmd,
		&railEnableCmd,
		&railDisableCmd,
	},
}

var railOutputs = map[string]byte{
	"dcdc1": axp192.OutputDCDC1,
	"dcdc2": axp192.OutputDCDC2,
	"dcdc3": axp192.OutputDCDC3,
	"ldo2":  axp192.OutputLDO2,
	"ldo3":  axp192.OutputLDO3,
	"exten": axp192.OutputExten,
}

var railSetCmd = cli.Command{
	Name:      "set",
	Usage:     "set rail output voltage in millivolts",
	ArgsUsage: "<dcdc1|dcdc2|dcdc3|ldo2|ldo3> <mV>",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return console.Exit(1, "expected 2 arguments, got %d", c.NArg())
		}
		rail := c.Args().Get(0)
		mV, err := strconv.Atoi(c.Args().Get(1))
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
		dev := axp192.New(bus)
		switch rail {
		case "dcdc1":
			err = dev.SetDCDC1Voltage(ctx, mV)
		case "dcdc2":
			err = dev.SetDCDC2Voltage(ctx, mV)
		case "dcdc3":
			err = dev.SetDCDC3Voltage(ctx, mV)
		case "ldo2":
			err = dev.SetLDO2Voltage(ctx, mV)
		case "ldo3":
			err = dev.SetLDO3Voltage(ctx, mV)
		default:
			return console.Exit(1, "unknown rail %q", rail)
		}
		if err != nil {
			return console.Exit(1, "could not set %s voltage: %s", rail, console.Red(err))
		}
		console.PInfof(console.PictoLightning, "%s set to %d mV", rail, mV)
		return nil
	},
}

var railEnableCmd = cli.Command{
	Name:      "enable",
	ArgsUsage: "<dcdc1|dcdc2|dcdc3|ldo2|ldo3|exten>",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		return switchRail(c, true)
	},
}

var railDisableCmd = cli.Command{
	Name:      "disable",
	ArgsUsage: "<dcdc1|dcdc2|dcdc3|ldo2|ldo3|exten>",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		return switchRail(c, false)
	},
}

func switchRail(c *cli.Context, enable bool) error {
	if c.NArg() != 1 {
		return console.Exit(1, "expected 1 argument, got %d", c.NArg())
	}
	rail := c.Args().Get(0)
	output, ok := railOutputs[rail]
	if !ok {
		return console.Exit(1, "unknown rail %q", rail)
	}
	ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
	defer cancel()
	bus, closeBus, err := openBus(c)
	if err != nil {
		return console.Exit(1, "%s", console.Red(err))
	}
	defer closeBus()
	dev := axp192.New(bus)
	if enable {
		err = dev.EnableOutput(ctx, output)
	} else {
		err = dev.DisableOutput(ctx, output)
	}
	if err != nil {
		return console.Exit(1, "could not switch rail %s: %s", rail, console.Red(err))
	}
	state := "enabled"
	if !enable {
		state = "disabled"
	}
	console.PInfof(console.PictoLightning, "%s %s", rail, state)
	return nil
}
