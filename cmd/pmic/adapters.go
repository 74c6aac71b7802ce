package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic"
	"github.com/mklimuk/pmic/adapter"
	"github.com/mklimuk/pmic/i2c"
)

// adapterFlags are shared by every command that talks to the chip.
var adapterFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adapter",
		Aliases: []string{"a"},
		Value:   "mcp2221",
		Usage:   "bus adapter (mcp2221, generic)",
	},
	&cli.StringFlag{
		Name:    "device",
		Aliases: []string{"d"},
		Value:   "/dev/i2c-1",
		Usage:   "i2c device for the generic adapter",
	},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
}

// openBus builds the selected transport. The returned closer is always
// safe to call.
func openBus(c *cli.Context) (pmic.I2CBus, func(), error) {
	switch c.String("adapter") {
	case "mcp2221":
		bridge := adapter.NewMCP2221()
		if err := bridge.Init(); err != nil {
			return nil, func() {}, fmt.Errorf("adapter initialization error: %w", err)
		}
		return bridge, func() { _ = bridge.Close() }, nil
	case "generic":
		bus, err := i2c.NewGenericBus(c.String("device"))
		if err != nil {
			return nil, func() {}, fmt.Errorf("adapter initialization error: %w", err)
		}
		return bus, func() { _ = bus.Close() }, nil
	}
	return nil, func() {}, fmt.Errorf("unknown adapter %q", c.String("adapter"))
}
