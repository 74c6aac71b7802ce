package adapter

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/karalabe/hid"

	"github.com/mklimuk/pmic"
)

const VendorID = 0x04D8
const ProductID = 0x00DD

// HID report commands we use (MCP2221 datasheet, chapter 3)
const (
	cmdStatusSetParams = 0x10
	cmdGetI2CData      = 0x40
	cmdI2CWriteData    = 0x90
	cmdI2CReadData     = 0x91
)

const reportSize = 64

var ErrCommandFailed = errors.New("command failed")
var ErrNotInitialized = errors.New("adapter not initialized")

// MCP2221 drives the Microchip MCP2221/MCP2221A USB-to-I2C bridge over raw
// HID reports and exposes it as a pmic.I2CBus. The device handle is opened
// once in Init and reused; Close releases it.
type MCP2221 struct {
	mx           sync.Mutex
	dev          *hid.Device
	request      []byte
	response     []byte
	responseWait time.Duration
}

// Status reports the bridge's I2C engine state (command 0x10 response).
type Status struct {
	DataBufferCounter int    `yaml:"data_buffer_counter"`
	SpeedDivider      int    `yaml:"speed_divider"`
	Timeout           int    `yaml:"timeout"`
	CurrentAddress    string `yaml:"current_address"`
	RequestedTransfer uint16 `yaml:"requested_transfer"`
	CompletedTransfer uint16 `yaml:"completed_transfer"`
	ReadPending       int    `yaml:"read_pending"`
}

func NewMCP2221() *MCP2221 {
	return &MCP2221{
		request:      make([]byte, reportSize),
		response:     make([]byte, reportSize),
		responseWait: 50 * time.Millisecond,
	}
}

// Init locates the bridge on the USB bus and opens its HID handle.
func (d *MCP2221) Init() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if d.dev != nil {
		return nil
	}
	devs := hid.Enumerate(VendorID, ProductID)
	if len(devs) == 0 {
		return fmt.Errorf("MCP2221 device not found")
	}
	if len(devs) > 1 {
		return fmt.Errorf("ambiguous device identification: %d MCP2221 bridges present", len(devs))
	}
	dev, err := devs[0].Open()
	if err != nil {
		return fmt.Errorf("error opening device: %w", err)
	}
	d.dev = dev
	return nil
}

func (d *MCP2221) Close() error {
	d.mx.Lock()
	defer d.mx.Unlock()
	if d.dev == nil {
		return nil
	}
	err := d.dev.Close()
	d.dev = nil
	return err
}

func (d *MCP2221) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdI2CWriteData
	binary.LittleEndian.PutUint16(d.request[1:3], uint16(len(buffer)))
	d.request[3] = address << 1
	copy(d.request[4:], buffer)
	err := d.roundTrip(ctx)
	if err != nil {
		return fmt.Errorf("write to %x failed: %w", address, err)
	}
	if d.response[1] == 0x01 {
		// engine still owns the bus from a previous transfer
		return pmic.ErrBusBusy
	}
	return nil
}

func (d *MCP2221) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdI2CReadData
	binary.LittleEndian.PutUint16(d.request[1:3], uint16(len(buffer)))
	d.request[3] = address<<1 | 1
	err := d.roundTrip(ctx)
	if err != nil {
		return fmt.Errorf("bus read from %x failed: %w", address, err)
	}
	if d.response[1] == 0x01 {
		return pmic.ErrBusBusy
	}
	// transfer requested; fetch the received bytes from the engine buffer
	d.resetBuffers()
	d.request[0] = cmdGetI2CData
	err = d.roundTrip(ctx)
	if err != nil {
		return fmt.Errorf("error getting read data from adapter: %w", err)
	}
	if d.response[1] == 0x41 {
		return fmt.Errorf("error reading the I2C slave data from the I2C engine")
	}
	if d.response[3] == 127 || int(d.response[3]) != len(buffer) {
		return fmt.Errorf("invalid data size byte; expected %d, got %d", len(buffer), d.response[3])
	}
	copy(buffer, d.response[4:])
	return nil
}

// Status queries the I2C engine state.
func (d *MCP2221) Status(ctx context.Context) (*Status, error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdStatusSetParams
	err := d.roundTrip(ctx)
	if err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return decodeStatus(d.response), nil
}

// Release cancels any pending transfer and frees the I2C engine.
func (d *MCP2221) Release(ctx context.Context) error {
	_, err := d.ReleaseBus(ctx)
	return err
}

// ReleaseBus cancels any pending transfer and returns the resulting engine
// state.
func (d *MCP2221) ReleaseBus(ctx context.Context) (*Status, error) {
	d.mx.Lock()
	defer d.mx.Unlock()
	d.resetBuffers()
	d.request[0] = cmdStatusSetParams
	d.request[2] = 0x10 // cancel current transfer
	err := d.roundTrip(ctx)
	if err != nil {
		return nil, fmt.Errorf("bus release failed: %w", err)
	}
	return decodeStatus(d.response), nil
}

func decodeStatus(buffer []byte) *Status {
	return &Status{
		DataBufferCounter: int(buffer[13]),
		SpeedDivider:      int(buffer[14]),
		Timeout:           int(buffer[15]),
		CurrentAddress:    hex.EncodeToString(buffer[16:18]),
		RequestedTransfer: binary.LittleEndian.Uint16(buffer[9:11]),
		CompletedTransfer: binary.LittleEndian.Uint16(buffer[11:13]),
		ReadPending:       int(buffer[25]),
	}
}

func (d *MCP2221) roundTrip(ctx context.Context) error {
	if d.dev == nil {
		return ErrNotInitialized
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.Debug("sending report to adapter", "command", fmt.Sprintf("%#x", d.request[0]))
	n, err := d.dev.Write(d.request)
	if err != nil {
		return fmt.Errorf("could not write request: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("short write: %d", n)
	}
	time.Sleep(d.responseWait)
	n, err = d.dev.Read(d.response)
	if err != nil {
		return fmt.Errorf("could not read response: %w", err)
	}
	if n != reportSize {
		return fmt.Errorf("short read: %d", n)
	}
	return nil
}

func (d *MCP2221) resetBuffers() {
	for i := range d.request {
		d.request[i] = 0x00
	}
	for i := range d.response {
		d.response[i] = 0x00
	}
}
