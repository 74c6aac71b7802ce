package main

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp192"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var adcCmd = cli.Command{
	Name: "adc",
	Subcommands: []*cli.Command{
		&adcReadCmd,
	},
}

var adcReadCmd = cli.Command{
	Name:    "read",
	Aliases: []string{"rd"},
	Flags:   adapterFlags,
	Action: func(c *cli.Context) error {
		ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 5*time.Second)
		defer cancel()
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeBus()
		dev := axp192.New(bus)
		err = dev.EnableADC(ctx, axp192.ADCBatteryVoltage|axp192.ADCBatteryCurrent|axp192.ADCVBUSVoltage|axp192.ADCVBUSCurrent)
		if err != nil {
			return console.Exit(1, "could not enable ADC channels: %s", console.Red(err))
		}
		batV, err := dev.GetBatteryVoltage(ctx)
		if err != nil {
			return console.Exit(1, "could not read battery voltage: %s", console.Red(err))
		}
		chgI, err := dev.GetBatteryChargeCurrent(ctx)
		if err != nil {
			return console.Exit(1, "could not read charge current: %s", console.Red(err))
		}
		disI, err := dev.GetBatteryDischargeCurrent(ctx)
		if err != nil {
			return console.Exit(1, "could not read discharge current: %s", console.Red(err))
		}
		vbusV, err := dev.GetVBUSVoltage(ctx)
		if err != nil {
			return console.Exit(1, "could not read VBUS voltage: %s", console.Red(err))
		}
		temp, err := dev.GetInternalTemperature(ctx)
		if err != nil {
			return console.Exit(1, "could not read internal temperature: %s", console.Red(err))
		}
		console.PInfof(console.PictoBattery, "battery: %s mV, +%s mA / -%s mA",
			console.White(batV), console.White(chgI), console.White(disI))
		console.PInfof(console.PictoPlug, "VBUS: %s mV", console.White(vbusV))
		console.PInfof(console.PictoThermometer, " die: %s °C", console.White(temp))
		return nil
	},
}
