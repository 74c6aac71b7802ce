package axp192

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupName(t *testing.T) {
	name, ok := LookupName(RegLDO23Voltage)
	assert.True(t, ok)
	assert.Equal(t, "LDO2/LDO3 voltage", name)

	// vendor-reserved addresses are not catalogued and are not an error
	name, ok = LookupName(Register(0xEE))
	assert.False(t, ok)
	assert.Empty(t, name)

	assert.Equal(t, "power output control", RegOutputCtl.Name())
	assert.Empty(t, Register(0xEE).Name())
}

func TestLDO23Fields_PartitionRegister(t *testing.T) {
	// the two nibble rails must not overlap and must cover the whole byte
	assert.Zero(t, LDO2VoltageMask&LDO3VoltageMask)
	assert.Equal(t, byte(0xFF), LDO2VoltageMask|LDO3VoltageMask)
}

func TestChargeCtl1Fields_DoNotOverlap(t *testing.T) {
	assert.Zero(t, ChargeEnable&ChargeTargetMask)
	assert.Zero(t, ChargeEnable&ChargeCurrentMask)
	assert.Zero(t, ChargeTargetMask&ChargeCurrentMask)
	assert.Zero(t, ChargeEndCurrent15&(ChargeTargetMask|ChargeCurrentMask))
}

func TestOutputFlags_AreSingleBits(t *testing.T) {
	flags := []byte{OutputDCDC1, OutputDCDC2, OutputDCDC3, OutputLDO2, OutputLDO3, OutputExten}
	var seen byte
	for _, f := range flags {
		assert.Zero(t, f&(f-1), "flag %#x must be a single bit", f)
		assert.Zero(t, seen&f, "flag %#x overlaps another output flag", f)
		seen |= f
	}
}
