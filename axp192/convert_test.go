package axp192

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDCDCVoltageBits_LinearEncoding(t *testing.T) {
	// every 25 mV step in [700, 3900) must decode back to the same step
	for mV := 700; mV < 3900; mV += 25 {
		bits, err := DCDCVoltageBits(mV)
		assert.NoError(t, err)
		assert.Less(t, bits, byte(128))
		assert.Equal(t, mV, 700+int(bits)*25)
	}
}

func TestDCDCVoltageBits_FloorsBetweenSteps(t *testing.T) {
	bits, err := DCDCVoltageBits(712)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), bits)
	bits, err = DCDCVoltageBits(3899)
	assert.NoError(t, err)
	assert.Equal(t, byte(127), bits)
}

func TestDCDCVoltageBits_OutOfRange(t *testing.T) {
	for _, mV := range []int{-100, 0, 699, 3900, 5000} {
		t.Run(fmt.Sprintf("%dmV", mV), func(t *testing.T) {
			_, err := DCDCVoltageBits(mV)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d mV", mV))
		})
	}
}

func TestLDO3VoltageBits(t *testing.T) {
	for mV := 1800; mV < 3400; mV += 100 {
		bits, err := LDO3VoltageBits(mV)
		assert.NoError(t, err)
		assert.Less(t, bits, byte(16))
		assert.Equal(t, mV, 1800+int(bits)*100)
	}
	_, err := LDO3VoltageBits(1700)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = LDO3VoltageBits(3400)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLDO2VoltageBits_IsShiftedLDO3(t *testing.T) {
	for mV := 1800; mV < 3400; mV += 100 {
		ldo3, err := LDO3VoltageBits(mV)
		assert.NoError(t, err)
		ldo2, err := LDO2VoltageBits(mV)
		assert.NoError(t, err)
		assert.Equal(t, ldo3<<4, ldo2)
		assert.Zero(t, ldo2&LDO3VoltageMask)
	}
	_, err := LDO2VoltageBits(3500)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestChargeTargetBits(t *testing.T) {
	tests := []struct {
		mV       int
		expected byte
	}{
		{4100, 0x00},
		{4150, 0x20},
		{4200, 0x40},
		{4360, 0x60},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%dmV", test.mV), func(t *testing.T) {
			bits, err := ChargeTargetBits(test.mV)
			assert.NoError(t, err)
			assert.Equal(t, test.expected, bits)
		})
	}
}

func TestChargeTargetBits_RejectsNonEnumerated(t *testing.T) {
	// in-range-looking values between the documented targets must fail too
	for _, mV := range []int{4000, 4120, 4250, 4300, 4400} {
		t.Run(fmt.Sprintf("%dmV", mV), func(t *testing.T) {
			_, err := ChargeTargetBits(mV)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestChargeCurrentBits(t *testing.T) {
	for mA := 100; mA <= 1320; mA += 80 {
		bits, err := ChargeCurrentBits(mA)
		assert.NoError(t, err)
		assert.Less(t, bits, byte(16))
		assert.Equal(t, mA, 100+int(bits)*80)
	}
	_, err := ChargeCurrentBits(99)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ChargeCurrentBits(1321)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestVoffVoltageBits(t *testing.T) {
	tests := []struct {
		mV       int
		expected byte
	}{
		{2600, 0x00},
		{2900, 0x03},
		{3300, 0x07},
	}
	for _, test := range tests {
		bits, err := VoffVoltageBits(test.mV)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, bits)
	}
	_, err := VoffVoltageBits(2500)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = VoffVoltageBits(3400)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLDOioVoltageBits(t *testing.T) {
	bits, err := LDOioVoltageBits(2800)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xA0), bits)
	assert.Zero(t, bits & ^LDOioVoltageMask)
	_, err = LDOioVoltageBits(1700)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestADCAssembly(t *testing.T) {
	assert.Equal(t, uint16(0xFFF), adc12(0xFF, 0x0F))
	assert.Equal(t, uint16(0xABC), adc12(0xAB, 0xFC))
	assert.Equal(t, uint16(0x1FFF), adc13(0xFF, 0x1F))
	assert.Equal(t, uint16(0x0021), adc13(0x01, 0x01))
}

func TestADCConversions(t *testing.T) {
	assert.InDelta(t, 4095*1.1, batteryVoltageFromADC(4095), 0.001)
	assert.InDelta(t, 100.0, batteryCurrentFromADC(200), 0.001)
	assert.InDelta(t, 1.7, vbusVoltageFromADC(1), 0.001)
	assert.InDelta(t, 0.375, vbusCurrentFromADC(1), 0.001)
	assert.InDelta(t, 0.625, acinCurrentFromADC(1), 0.001)
	// raw 1447 is exactly 0 °C
	assert.InDelta(t, 0.0, internalTempFromADC(1447), 0.01)
}
