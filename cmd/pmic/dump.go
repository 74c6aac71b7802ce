package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/mklimuk/pmic/axp192"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var dumpCmd = cli.Command{
	Name:  "dump",
	Usage: "read every catalogued register and print its value",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{Name: "yaml", Usage: "emit yaml instead of plain text"},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx, cancel := context.WithTimeout(console.SetVerbose(context.Background(), c.Bool("verbose")), 30*time.Second)
		defer cancel()
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "%s", console.Red(err))
		}
		defer closeBus()
		dev := axp192.New(bus)

		type entry struct {
			Address string `yaml:"address"`
			Name    string `yaml:"name"`
			Value   string `yaml:"value"`
		}
		var entries []entry
		for addr := 0; addr <= 0xFF; addr++ {
			reg := axp192.Register(addr)
			name, ok := axp192.LookupName(reg)
			if !ok {
				continue
			}
			value, err := dev.ReadRegister(ctx, reg)
			if err != nil {
				return console.Exit(1, "could not read register %#x: %s", addr, console.Red(err))
			}
			entries = append(entries, entry{
				Address: fmt.Sprintf("%#02x", addr),
				Name:    name,
				Value:   fmt.Sprintf("%#02x", value),
			})
		}
		if c.Bool("yaml") {
			enc := yaml.NewEncoder(os.Stdout)
			if err := enc.Encode(entries); err != nil {
				return console.Exit(1, "encoding error: %s", console.Red(err))
			}
			return enc.Close()
		}
		for _, e := range entries {
			console.Printf("%s %s %s\n", console.White(e.Address), console.Bold(e.Value), e.Name)
		}
		return nil
	},
}
