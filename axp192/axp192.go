package axp192

import (
	"context"
	"fmt"

	"github.com/mklimuk/pmic"
)

const defaultAddress = 0x34

// AXP192 represents an X-Powers AXP192 power management IC
// See: http://www.x-powers.com/en.php/Info/product_detail/article_id/29
//
// The driver keeps no register state; every operation goes to the bus.
// Callers that mutate the same register from several goroutines must
// serialize access themselves.
type AXP192 struct {
	transport pmic.I2CBus
	address   byte
}

type Config struct {
	Address byte
}

type ConfigOption func(*Config)

func WithAddress(address byte) ConfigOption {
	return func(c *Config) {
		c.Address = address
	}
}

// New creates an AXP192 connector on the given I2CBus transport. The device
// answers on 0x34 unless the board wires it differently.
func New(trans pmic.I2CBus, opts ...ConfigOption) *AXP192 {
	config := &Config{
		Address: defaultAddress,
	}
	for _, opt := range opts {
		opt(config)
	}
	return &AXP192{transport: trans, address: config.Address}
}

// ReadRegister reads a single register byte (pointer write then one-byte
// read, two bus transactions).
func (a *AXP192) ReadRegister(ctx context.Context, reg Register) (byte, error) {
	err := a.transport.WriteToAddr(ctx, a.address, []byte{byte(reg)})
	if err != nil {
		return 0, fmt.Errorf("axp192: could not set register pointer %#x: %w", byte(reg), err)
	}
	buf := make([]byte, 1)
	err = a.transport.ReadFromAddr(ctx, a.address, buf)
	if err != nil {
		return 0, fmt.Errorf("axp192: could not read register %#x: %w", byte(reg), err)
	}
	return buf[0], nil
}

// WriteRegister writes a full register byte, replacing all eight bits.
func (a *AXP192) WriteRegister(ctx context.Context, reg Register, value byte) error {
	err := a.transport.WriteToAddr(ctx, a.address, []byte{byte(reg), value})
	if err != nil {
		return fmt.Errorf("axp192: could not write register %#x: %w", byte(reg), err)
	}
	return nil
}

// SetBits performs a read-modify-write that clears exactly the bits in bits
// and then ORs bits back in; the update mask defaults to bits itself.
// Setting a multi-bit field to a value with zero bits therefore needs
// SetBitsMasked with the field's full mask, since bits that are zero here
// are left untouched.
func (a *AXP192) SetBits(ctx context.Context, reg Register, bits byte) error {
	return a.SetBitsMasked(ctx, reg, bits, bits)
}

// SetBitsMasked performs a read-modify-write replacing the bits selected by
// mask with bits, leaving the rest of the register untouched. One read and
// one write transaction, no atomicity across them.
func (a *AXP192) SetBitsMasked(ctx context.Context, reg Register, bits, mask byte) error {
	current, err := a.ReadRegister(ctx, reg)
	if err != nil {
		return err
	}
	return a.WriteRegister(ctx, reg, (current&^mask)|bits)
}

// ClearBits performs a read-modify-write clearing exactly the given bits.
func (a *AXP192) ClearBits(ctx context.Context, reg Register, bits byte) error {
	current, err := a.ReadRegister(ctx, reg)
	if err != nil {
		return err
	}
	return a.WriteRegister(ctx, reg, current&^bits)
}

// EnableOutput switches on the rails selected by the given output control
// flags (OutputDCDC1, OutputLDO3, ...).
func (a *AXP192) EnableOutput(ctx context.Context, outputs byte) error {
	err := a.SetBits(ctx, RegOutputCtl, outputs)
	if err != nil {
		return fmt.Errorf("axp192: could not enable outputs %#x: %w", outputs, err)
	}
	return nil
}

// DisableOutput switches off the rails selected by the given output control
// flags.
func (a *AXP192) DisableOutput(ctx context.Context, outputs byte) error {
	err := a.ClearBits(ctx, RegOutputCtl, outputs)
	if err != nil {
		return fmt.Errorf("axp192: could not disable outputs %#x: %w", outputs, err)
	}
	return nil
}

// SetDCDC1Voltage sets the DC-DC1 rail in millivolts ([700, 3900), 25 mV
// steps).
func (a *AXP192) SetDCDC1Voltage(ctx context.Context, mV int) error {
	return a.setDCDCVoltage(ctx, RegDCDC1Voltage, mV)
}

// SetDCDC2Voltage sets the DC-DC2 rail in millivolts.
func (a *AXP192) SetDCDC2Voltage(ctx context.Context, mV int) error {
	return a.setDCDCVoltage(ctx, RegDCDC2Voltage, mV)
}

// SetDCDC3Voltage sets the DC-DC3 rail in millivolts.
func (a *AXP192) SetDCDC3Voltage(ctx context.Context, mV int) error {
	return a.setDCDCVoltage(ctx, RegDCDC3Voltage, mV)
}

func (a *AXP192) setDCDCVoltage(ctx context.Context, reg Register, mV int) error {
	bits, err := DCDCVoltageBits(mV)
	if err != nil {
		return err
	}
	return a.WriteRegister(ctx, reg, bits)
}

// SetLDO2Voltage sets the LDO2 rail in millivolts ([1800, 3400), 100 mV
// steps). Only the high nibble of the shared register is touched.
func (a *AXP192) SetLDO2Voltage(ctx context.Context, mV int) error {
	bits, err := LDO2VoltageBits(mV)
	if err != nil {
		return err
	}
	return a.SetBitsMasked(ctx, RegLDO23Voltage, bits, LDO2VoltageMask)
}

// SetLDO3Voltage sets the LDO3 rail in millivolts. Only the low nibble of
// the shared register is touched.
func (a *AXP192) SetLDO3Voltage(ctx context.Context, mV int) error {
	bits, err := LDO3VoltageBits(mV)
	if err != nil {
		return err
	}
	return a.SetBitsMasked(ctx, RegLDO23Voltage, bits, LDO3VoltageMask)
}

// SetChargeTargetVoltage sets the battery charge target; only 4100, 4150,
// 4200 and 4360 mV are accepted.
func (a *AXP192) SetChargeTargetVoltage(ctx context.Context, mV int) error {
	bits, err := ChargeTargetBits(mV)
	if err != nil {
		return err
	}
	return a.SetBitsMasked(ctx, RegChargeCtl1, bits, ChargeTargetMask)
}

// SetChargeCurrent sets the charge current in milliamps ([100, 1320], 80 mA
// steps).
func (a *AXP192) SetChargeCurrent(ctx context.Context, mA int) error {
	bits, err := ChargeCurrentBits(mA)
	if err != nil {
		return err
	}
	return a.SetBitsMasked(ctx, RegChargeCtl1, bits, ChargeCurrentMask)
}

// EnableCharging switches the battery charger on.
func (a *AXP192) EnableCharging(ctx context.Context) error {
	return a.SetBits(ctx, RegChargeCtl1, ChargeEnable)
}

// DisableCharging switches the battery charger off.
func (a *AXP192) DisableCharging(ctx context.Context) error {
	return a.ClearBits(ctx, RegChargeCtl1, ChargeEnable)
}

// SetVoffVoltage sets the power-off threshold in millivolts ([2600, 3300],
// 100 mV steps).
func (a *AXP192) SetVoffVoltage(ctx context.Context, mV int) error {
	bits, err := VoffVoltageBits(mV)
	if err != nil {
		return err
	}
	return a.SetBitsMasked(ctx, RegVoffVoltage, bits, VoffVoltageMask)
}

// PowerStatus decodes the power status register (0x00).
type PowerStatus struct {
	ACINPresent    bool
	ACINUsable     bool
	VBUSPresent    bool
	VBUSUsable     bool
	VBUSAboveVhold bool
	Charging       bool
	BootSourceACIN bool
}

// ChargeStatus decodes the mode/charge status register (0x01).
type ChargeStatus struct {
	OverTemperature    bool
	ChargeInProgress   bool
	BatteryPresent     bool
	BatteryActivated   bool
	CurrentBelowTarget bool
}

// GetPowerStatus reads and decodes the power status register.
func (a *AXP192) GetPowerStatus(ctx context.Context) (PowerStatus, error) {
	raw, err := a.ReadRegister(ctx, RegPowerStatus)
	if err != nil {
		return PowerStatus{}, err
	}
	return PowerStatus{
		ACINPresent:    raw&StatusACINPresent != 0,
		ACINUsable:     raw&StatusACINUsable != 0,
		VBUSPresent:    raw&StatusVBUSPresent != 0,
		VBUSUsable:     raw&StatusVBUSUsable != 0,
		VBUSAboveVhold: raw&StatusVBUSAboveHold != 0,
		Charging:       raw&StatusBatCharging != 0,
		BootSourceACIN: raw&StatusBootSourceACIN != 0,
	}, nil
}

// GetChargeStatus reads and decodes the mode/charge status register.
func (a *AXP192) GetChargeStatus(ctx context.Context) (ChargeStatus, error) {
	raw, err := a.ReadRegister(ctx, RegChargeStatus)
	if err != nil {
		return ChargeStatus{}, err
	}
	return ChargeStatus{
		OverTemperature:    raw&StatusOverTemp != 0,
		ChargeInProgress:   raw&StatusChargeInProgress != 0,
		BatteryPresent:     raw&StatusBatPresent != 0,
		BatteryActivated:   raw&StatusBatActivation != 0,
		CurrentBelowTarget: raw&StatusChargeCurrentLow != 0,
	}, nil
}

// EnableADC enables the ADC channels selected by flags in register 0x82.
func (a *AXP192) EnableADC(ctx context.Context, channels byte) error {
	return a.SetBits(ctx, RegADCEnable1, channels)
}

// DisableADC disables the ADC channels selected by flags in register 0x82.
func (a *AXP192) DisableADC(ctx context.Context, channels byte) error {
	return a.ClearBits(ctx, RegADCEnable1, channels)
}

func (a *AXP192) readADC(ctx context.Context, high, low Register, width func(h, l byte) uint16) (uint16, error) {
	h, err := a.ReadRegister(ctx, high)
	if err != nil {
		return 0, err
	}
	l, err := a.ReadRegister(ctx, low)
	if err != nil {
		return 0, err
	}
	return width(h, l), nil
}

// GetBatteryVoltage returns the battery voltage in millivolts (12-bit ADC,
// 1.1 mV per LSB).
func (a *AXP192) GetBatteryVoltage(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegBatteryVoltageH, RegBatteryVoltageL, adc12)
	if err != nil {
		return 0, err
	}
	return batteryVoltageFromADC(raw), nil
}

// GetBatteryChargeCurrent returns the battery charge current in milliamps
// (13-bit ADC, 0.5 mA per LSB).
func (a *AXP192) GetBatteryChargeCurrent(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegChargeCurrentH, RegChargeCurrentL, adc13)
	if err != nil {
		return 0, err
	}
	return batteryCurrentFromADC(raw), nil
}

// GetBatteryDischargeCurrent returns the battery discharge current in
// milliamps (13-bit ADC, 0.5 mA per LSB).
func (a *AXP192) GetBatteryDischargeCurrent(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegDischargeCurrentH, RegDischargeCurrentL, adc13)
	if err != nil {
		return 0, err
	}
	return batteryCurrentFromADC(raw), nil
}

// GetVBUSVoltage returns the VBUS voltage in millivolts (12-bit ADC,
// 1.7 mV per LSB).
func (a *AXP192) GetVBUSVoltage(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegVBUSVoltageH, RegVBUSVoltageL, adc12)
	if err != nil {
		return 0, err
	}
	return vbusVoltageFromADC(raw), nil
}

// GetVBUSCurrent returns the VBUS current in milliamps (12-bit ADC,
// 0.375 mA per LSB).
func (a *AXP192) GetVBUSCurrent(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegVBUSCurrentH, RegVBUSCurrentL, adc12)
	if err != nil {
		return 0, err
	}
	return vbusCurrentFromADC(raw), nil
}

// GetACINVoltage returns the ACIN voltage in millivolts (12-bit ADC,
// 1.7 mV per LSB).
func (a *AXP192) GetACINVoltage(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegACINVoltageH, RegACINVoltageL, adc12)
	if err != nil {
		return 0, err
	}
	return acinVoltageFromADC(raw), nil
}

// GetACINCurrent returns the ACIN current in milliamps (12-bit ADC,
// 0.625 mA per LSB).
func (a *AXP192) GetACINCurrent(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegACINCurrentH, RegACINCurrentL, adc12)
	if err != nil {
		return 0, err
	}
	return acinCurrentFromADC(raw), nil
}

// GetInternalTemperature returns the die temperature in Celsius (12-bit
// ADC, 0.1 °C per LSB from -144.7 °C).
func (a *AXP192) GetInternalTemperature(ctx context.Context) (float32, error) {
	raw, err := a.readADC(ctx, RegInternalTempH, RegInternalTempL, adc12)
	if err != nil {
		return 0, err
	}
	return internalTempFromADC(raw), nil
}

// SetGPIO0Mode selects the GPIO0 pin function (register 0x90, bits 2:0).
func (a *AXP192) SetGPIO0Mode(ctx context.Context, mode GPIOMode) error {
	return a.SetBitsMasked(ctx, RegGPIO0Ctl, byte(mode), gpioModeMask)
}

// SetGPIO1Mode selects the GPIO1 pin function (register 0x92, bits 2:0).
func (a *AXP192) SetGPIO1Mode(ctx context.Context, mode GPIOMode) error {
	return a.SetBitsMasked(ctx, RegGPIO1Ctl, byte(mode), gpioModeMask)
}

// SetGPIO2Mode selects the GPIO2 pin function (register 0x93, bits 2:0).
func (a *AXP192) SetGPIO2Mode(ctx context.Context, mode GPIOMode) error {
	return a.SetBitsMasked(ctx, RegGPIO2Ctl, byte(mode), gpioModeMask)
}

// SetLDOioVoltage sets the GPIO0 LDO-mode output voltage in millivolts
// ([1800, 3300], 100 mV steps). The pin must be in GPIOModeLDO for the
// setting to take effect.
func (a *AXP192) SetLDOioVoltage(ctx context.Context, mV int) error {
	bits, err := LDOioVoltageBits(mV)
	if err != nil {
		return err
	}
	return a.SetBitsMasked(ctx, RegGPIO0LDOVoltage, bits, LDOioVoltageMask)
}

// EnableCoulombCounter starts battery charge/discharge accumulation.
func (a *AXP192) EnableCoulombCounter(ctx context.Context) error {
	return a.SetBits(ctx, RegCoulombCtl, CoulombEnable)
}

// ClearCoulombCounter resets both accumulation registers.
func (a *AXP192) ClearCoulombCounter(ctx context.Context) error {
	return a.SetBits(ctx, RegCoulombCtl, CoulombClear)
}

// Shutdown powers the chip (and everything it supplies) off. There is no
// way back over the bus; the PEK key or a power source re-plug restarts it.
func (a *AXP192) Shutdown(ctx context.Context) error {
	return a.SetBits(ctx, RegShutdownBatChgLED, ShutdownBit)
}
