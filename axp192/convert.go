package axp192

import (
	"errors"
	"fmt"
)

// ErrInvalidValue is wrapped by every converter rejection. A converter error
// means the caller passed a value outside the documented range for the
// field; it is a programming mistake, never a transient condition.
var ErrInvalidValue = errors.New("value out of range")

// DCDCVoltageBits converts a DC-DC output voltage in millivolts to the raw
// 7-bit value of registers 0x23/0x26/0x27. The step is 25 mV from a 700 mV
// base; inputs between steps are floored to the next step down.
func DCDCVoltageBits(mV int) (byte, error) {
	if mV < 700 || mV >= 3900 {
		return 0, fmt.Errorf("%w: DC-DC voltage %d mV, accepted range [700, 3900) mV", ErrInvalidValue, mV)
	}
	return byte((mV - 700) / 25), nil
}

// LDO3VoltageBits converts an LDO3 output voltage in millivolts to the low
// nibble of register 0x28. The step is 100 mV from an 1800 mV base.
func LDO3VoltageBits(mV int) (byte, error) {
	if mV < 1800 || mV >= 3400 {
		return 0, fmt.Errorf("%w: LDO3 voltage %d mV, accepted range [1800, 3400) mV", ErrInvalidValue, mV)
	}
	return byte((mV - 1800) / 100), nil
}

// LDO2VoltageBits converts an LDO2 output voltage in millivolts to the high
// nibble of register 0x28. LDO2 shares the encoding of LDO3 shifted into
// the upper four bits, so the domain and failure contract are the same.
func LDO2VoltageBits(mV int) (byte, error) {
	bits, err := LDO3VoltageBits(mV)
	if err != nil {
		return 0, fmt.Errorf("%w: LDO2 voltage %d mV, accepted range [1800, 3400) mV", ErrInvalidValue, mV)
	}
	return bits << LDO2VoltageShift, nil
}

// ChargeTargetBits converts a charge target voltage in millivolts to the
// bits 6:5 field of register 0x33. Only the four voltages the charger
// supports are accepted; there is no interpolation.
func ChargeTargetBits(mV int) (byte, error) {
	switch mV {
	case 4100:
		return 0x00, nil
	case 4150:
		return 0x20, nil
	case 4200:
		return 0x40, nil
	case 4360:
		return 0x60, nil
	}
	return 0, fmt.Errorf("%w: charge target %d mV, accepted values 4100, 4150, 4200, 4360 mV", ErrInvalidValue, mV)
}

// ChargeCurrentBits converts a charge current in milliamps to the low
// nibble of register 0x33. The step is 80 mA from a 100 mA base; inputs
// between steps are floored.
func ChargeCurrentBits(mA int) (byte, error) {
	if mA < 100 || mA > 1320 {
		return 0, fmt.Errorf("%w: charge current %d mA, accepted range [100, 1320] mA", ErrInvalidValue, mA)
	}
	return byte((mA - 100) / 80), nil
}

// VoffVoltageBits converts the power-off threshold in millivolts to the
// 3-bit field of register 0x31. The step is 100 mV from a 2600 mV base.
func VoffVoltageBits(mV int) (byte, error) {
	if mV < 2600 || mV > 3300 {
		return 0, fmt.Errorf("%w: VOFF voltage %d mV, accepted range [2600, 3300] mV", ErrInvalidValue, mV)
	}
	return byte((mV - 2600) / 100), nil
}

// LDOioVoltageBits converts the GPIO0 LDO-mode output voltage in millivolts
// to the high nibble of register 0x91. Same 100 mV nibble encoding as the
// LDO rails, shifted past the vendor-reserved low bits.
func LDOioVoltageBits(mV int) (byte, error) {
	if mV < 1800 || mV > 3300 {
		return 0, fmt.Errorf("%w: LDOio voltage %d mV, accepted range [1800, 3300] mV", ErrInvalidValue, mV)
	}
	return byte((mV-1800)/100) << LDOioVoltageShift, nil
}

// adc12 assembles a 12-bit ADC value from a high byte and the low nibble of
// the following register.
func adc12(high, low byte) uint16 {
	return uint16(high)<<4 | uint16(low&0x0F)
}

// adc13 assembles a 13-bit ADC value (current channels) from a high byte
// and the five low bits of the following register.
func adc13(high, low byte) uint16 {
	return uint16(high)<<5 | uint16(low&0x1F)
}

// Datasheet LSB weights for the ADC channels.
func batteryVoltageFromADC(raw uint16) float32 { return float32(raw) * 1.1 }    // mV
func batteryCurrentFromADC(raw uint16) float32 { return float32(raw) * 0.5 }    // mA
func vbusVoltageFromADC(raw uint16) float32    { return float32(raw) * 1.7 }    // mV
func vbusCurrentFromADC(raw uint16) float32    { return float32(raw) * 0.375 }  // mA
func acinVoltageFromADC(raw uint16) float32    { return float32(raw) * 1.7 }    // mV
func acinCurrentFromADC(raw uint16) float32    { return float32(raw) * 0.625 }  // mA
func internalTempFromADC(raw uint16) float32   { return float32(raw)*0.1 - 144.7 } // °C
