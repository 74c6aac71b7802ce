package axp192

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockI2CBus is a mock implementation of pmic.I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) WriteToAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	return args.Error(0)
}

func (m *MockI2CBus) ReadFromAddr(ctx context.Context, address byte, buffer []byte) error {
	args := m.Called(ctx, address, buffer)
	if args.Get(0) != nil {
		if data, ok := args.Get(0).([]byte); ok && len(data) <= len(buffer) {
			copy(buffer, data)
		}
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// expectRead scripts the pointer-write/read pair ReadRegister performs.
func expectRead(bus *MockI2CBus, reg Register, value byte) {
	bus.On("WriteToAddr", mock.Anything, byte(defaultAddress), []byte{byte(reg)}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(defaultAddress), mock.Anything).
		Return([]byte{value}, nil).Once()
}

func expectWrite(bus *MockI2CBus, reg Register, value byte) {
	bus.On("WriteToAddr", mock.Anything, byte(defaultAddress), []byte{byte(reg), value}).
		Return(nil).Once()
}

func TestSetBits_MaskedUpdate(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegOutputCtl, 0b1010_1010)
	expectWrite(bus, RegOutputCtl, 0b1010_1111)

	err := dev.SetBitsMasked(ctx, RegOutputCtl, 0b0000_1111, 0b0000_1111)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestSetBits_MaskDefaultsToBits(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	// only the bits being set are cleared first, so 0b0101 over 0b1010_1010
	// lands on 0b1010_1111
	expectRead(bus, RegOutputCtl, 0b1010_1010)
	expectWrite(bus, RegOutputCtl, 0b1010_1111)

	err := dev.SetBits(ctx, RegOutputCtl, 0b0000_0101)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestSetBits_ZeroBitsClearNothing(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	// the sharp edge of the default mask: bits == 0 means mask == 0, the
	// register is written back unchanged
	expectRead(bus, RegChargeCtl1, 0b1110_0011)
	expectWrite(bus, RegChargeCtl1, 0b1110_0011)

	err := dev.SetBits(ctx, RegChargeCtl1, 0x00)
	assert.NoError(t, err)
	bus.AssertExpectations(t)

	// writing a field to zero takes the explicit full field mask
	bus = new(MockI2CBus)
	dev = New(bus)
	expectRead(bus, RegChargeCtl1, 0b1110_0011)
	expectWrite(bus, RegChargeCtl1, 0b1000_0011)
	err = dev.SetBitsMasked(ctx, RegChargeCtl1, 0x00, ChargeTargetMask)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestClearBits(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegOutputCtl, 0b1111_1111)
	expectWrite(bus, RegOutputCtl, 0b1111_0000)

	err := dev.ClearBits(ctx, RegOutputCtl, 0b0000_1111)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestSetBits_Idempotent(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	// first call flips the low nibble, second reads the already-updated
	// byte and writes the same value again
	expectRead(bus, RegOutputCtl, 0b1010_1010)
	expectWrite(bus, RegOutputCtl, 0b1010_1111)
	expectRead(bus, RegOutputCtl, 0b1010_1111)
	expectWrite(bus, RegOutputCtl, 0b1010_1111)

	err := dev.SetBits(ctx, RegOutputCtl, 0b0000_1111)
	assert.NoError(t, err)
	err = dev.SetBits(ctx, RegOutputCtl, 0b0000_1111)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestSetLDO3ThenEnable_TransactionSequence(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegLDO23Voltage, 0xF2)
	expectWrite(bus, RegLDO23Voltage, 0xFF)
	expectRead(bus, RegOutputCtl, 0x45)
	expectWrite(bus, RegOutputCtl, 0x4D)

	err := dev.SetLDO3Voltage(ctx, 3300)
	assert.NoError(t, err)
	err = dev.EnableOutput(ctx, OutputLDO3)
	assert.NoError(t, err)
	bus.AssertExpectations(t)

	// exactly two read+write pairs, against 0x28 then 0x12, nothing else
	assert.Len(t, bus.Calls, 6)
	var touched []byte
	for _, call := range bus.Calls {
		if call.Method == "WriteToAddr" {
			if buf, ok := call.Arguments.Get(2).([]byte); ok && len(buf) >= 1 {
				touched = append(touched, buf[0])
			}
		}
	}
	assert.Equal(t, []byte{0x28, 0x28, 0x12, 0x12}, touched)
}

func TestSetLDO2Voltage_TouchesHighNibbleOnly(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegLDO23Voltage, 0x0C)
	expectWrite(bus, RegLDO23Voltage, 0xFC)

	err := dev.SetLDO2Voltage(ctx, 3300)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestConverterErrors_NoBusTraffic(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	assert.ErrorIs(t, dev.SetDCDC1Voltage(ctx, 4000), ErrInvalidValue)
	assert.ErrorIs(t, dev.SetLDO3Voltage(ctx, 1500), ErrInvalidValue)
	assert.ErrorIs(t, dev.SetChargeTargetVoltage(ctx, 4250), ErrInvalidValue)
	assert.ErrorIs(t, dev.SetChargeCurrent(ctx, 2000), ErrInvalidValue)
	bus.AssertNotCalled(t, "WriteToAddr", mock.Anything, mock.Anything, mock.Anything)
	bus.AssertNotCalled(t, "ReadFromAddr", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransportErrors_Propagate(t *testing.T) {
	busErr := errors.New("i2c write failed")

	t.Run("read failure", func(t *testing.T) {
		bus := new(MockI2CBus)
		dev := New(bus)
		bus.On("WriteToAddr", mock.Anything, byte(defaultAddress), []byte{byte(RegOutputCtl)}).
			Return(busErr).Once()
		err := dev.SetBits(context.Background(), RegOutputCtl, OutputLDO3)
		assert.ErrorIs(t, err, busErr)
		bus.AssertExpectations(t)
	})

	t.Run("write failure after read", func(t *testing.T) {
		bus := new(MockI2CBus)
		dev := New(bus)
		expectRead(bus, RegOutputCtl, 0x45)
		bus.On("WriteToAddr", mock.Anything, byte(defaultAddress), []byte{byte(RegOutputCtl), 0x4D}).
			Return(busErr).Once()
		err := dev.SetBits(context.Background(), RegOutputCtl, OutputLDO3)
		assert.ErrorIs(t, err, busErr)
		// no retry, no restore
		bus.AssertExpectations(t)
	})
}

func TestGetBatteryVoltage(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	// raw 0xFFF -> 4095 * 1.1 mV
	expectRead(bus, RegBatteryVoltageH, 0xFF)
	expectRead(bus, RegBatteryVoltageL, 0x0F)

	mV, err := dev.GetBatteryVoltage(ctx)
	assert.NoError(t, err)
	assert.InDelta(t, 4504.5, mV, 0.01)
	bus.AssertExpectations(t)
}

func TestGetPowerStatus(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegPowerStatus, StatusVBUSPresent|StatusVBUSUsable|StatusBatCharging)

	status, err := dev.GetPowerStatus(ctx)
	assert.NoError(t, err)
	assert.True(t, status.VBUSPresent)
	assert.True(t, status.VBUSUsable)
	assert.True(t, status.Charging)
	assert.False(t, status.ACINPresent)
	bus.AssertExpectations(t)
}

func TestGetChargeStatus(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegChargeStatus, StatusChargeInProgress|StatusBatPresent)

	status, err := dev.GetChargeStatus(ctx)
	assert.NoError(t, err)
	assert.True(t, status.ChargeInProgress)
	assert.True(t, status.BatteryPresent)
	assert.False(t, status.OverTemperature)
	bus.AssertExpectations(t)
}

func TestWithAddress(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus, WithAddress(0x35))
	ctx := context.Background()

	bus.On("WriteToAddr", mock.Anything, byte(0x35), []byte{byte(RegPowerStatus)}).
		Return(nil).Once()
	bus.On("ReadFromAddr", mock.Anything, byte(0x35), mock.Anything).
		Return([]byte{0x00}, nil).Once()

	_, err := dev.ReadRegister(ctx, RegPowerStatus)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestShutdown(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	expectRead(bus, RegShutdownBatChgLED, 0x46)
	expectWrite(bus, RegShutdownBatChgLED, 0xC6)

	assert.NoError(t, dev.Shutdown(ctx))
	bus.AssertExpectations(t)
}
