package axp192

// Register is an 8-bit register address on the AXP192. Keeping addresses
// typed prevents mixing them up with raw data bytes or other chips' maps.
type Register byte

// Power control registers
const (
	RegPowerStatus       Register = 0x00
	RegChargeStatus      Register = 0x01
	RegOTGVBUSStatus     Register = 0x04
	RegDataBuffer0       Register = 0x06
	RegDataBuffer1       Register = 0x07
	RegDataBuffer2       Register = 0x08
	RegDataBuffer3       Register = 0x09
	RegDataBuffer4       Register = 0x0A
	RegDataBuffer5       Register = 0x0B
	RegExtenDCDC2Ctl     Register = 0x10
	RegOutputCtl         Register = 0x12
	RegDCDC2Voltage      Register = 0x23
	RegDCDC2Slope        Register = 0x25
	RegDCDC1Voltage      Register = 0x26
	RegDCDC3Voltage      Register = 0x27
	RegLDO23Voltage      Register = 0x28
	RegVBUSIPSOut        Register = 0x30
	RegVoffVoltage       Register = 0x31
	RegShutdownBatChgLED Register = 0x32
	RegChargeCtl1        Register = 0x33
	RegChargeCtl2        Register = 0x34
	RegBackupChargeCtl   Register = 0x35
	RegPEKParams         Register = 0x36
	RegDCDCFrequency     Register = 0x37
	RegVLTFCharge        Register = 0x38
	RegVHTFCharge        Register = 0x39
	RegAPSLowPower1      Register = 0x3A
	RegAPSLowPower2      Register = 0x3B
	RegVLTFDischarge     Register = 0x3C
	RegVHTFDischarge     Register = 0x3D
)

// Interrupt registers
const (
	RegIRQEnable1 Register = 0x40
	RegIRQEnable2 Register = 0x41
	RegIRQEnable3 Register = 0x42
	RegIRQEnable4 Register = 0x43
	RegIRQStatus1 Register = 0x44
	RegIRQStatus2 Register = 0x45
	RegIRQStatus3 Register = 0x46
	RegIRQStatus4 Register = 0x47
	RegIRQEnable5 Register = 0x4A
	RegIRQStatus5 Register = 0x4D
)

// ADC data registers; 12-bit values are high byte first, low nibble in the
// second register, 13-bit current values use 5 low bits.
const (
	RegACINVoltageH      Register = 0x56
	RegACINVoltageL      Register = 0x57
	RegACINCurrentH      Register = 0x58
	RegACINCurrentL      Register = 0x59
	RegVBUSVoltageH      Register = 0x5A
	RegVBUSVoltageL      Register = 0x5B
	RegVBUSCurrentH      Register = 0x5C
	RegVBUSCurrentL      Register = 0x5D
	RegInternalTempH     Register = 0x5E
	RegInternalTempL     Register = 0x5F
	RegTSInputH          Register = 0x62
	RegTSInputL          Register = 0x63
	RegGPIO0ADCH         Register = 0x64
	RegGPIO0ADCL         Register = 0x65
	RegGPIO1ADCH         Register = 0x66
	RegGPIO1ADCL         Register = 0x67
	RegBatteryPowerH     Register = 0x70
	RegBatteryPowerM     Register = 0x71
	RegBatteryPowerL     Register = 0x72
	RegBatteryVoltageH   Register = 0x78
	RegBatteryVoltageL   Register = 0x79
	RegChargeCurrentH    Register = 0x7A
	RegChargeCurrentL    Register = 0x7B
	RegDischargeCurrentH Register = 0x7C
	RegDischargeCurrentL Register = 0x7D
	RegAPSVoltageH       Register = 0x7E
	RegAPSVoltageL       Register = 0x7F
	RegADCEnable1        Register = 0x82
	RegADCEnable2        Register = 0x83
	RegADCSampleRate     Register = 0x84
	RegADCInputRange     Register = 0x85
)

// GPIO registers
const (
	RegGPIO0Ctl        Register = 0x90
	RegGPIO0LDOVoltage Register = 0x91
	RegGPIO1Ctl        Register = 0x92
	RegGPIO2Ctl        Register = 0x93
	RegGPIOSignal012   Register = 0x94
	RegGPIOCtl34       Register = 0x95
	RegGPIOSignal34    Register = 0x96
	RegGPIOPullDown    Register = 0x97
)

// Coulomb counter registers
const (
	RegCoulombCharge3    Register = 0xB0
	RegCoulombCharge2    Register = 0xB1
	RegCoulombCharge1    Register = 0xB2
	RegCoulombCharge0    Register = 0xB3
	RegCoulombDischarge3 Register = 0xB4
	RegCoulombDischarge2 Register = 0xB5
	RegCoulombDischarge1 Register = 0xB6
	RegCoulombDischarge0 Register = 0xB7
	RegCoulombCtl        Register = 0xB8
)

// Power status register (0x00) flags
const (
	StatusACINPresent    byte = 1 << 7
	StatusACINUsable     byte = 1 << 6
	StatusVBUSPresent    byte = 1 << 5
	StatusVBUSUsable     byte = 1 << 4
	StatusVBUSAboveHold  byte = 1 << 3
	StatusBatCharging    byte = 1 << 2
	StatusACINVBUSShort  byte = 1 << 1
	StatusBootSourceACIN byte = 1 << 0
)

// Charge status register (0x01) flags
const (
	StatusOverTemp         byte = 1 << 7
	StatusChargeInProgress byte = 1 << 6
	StatusBatPresent       byte = 1 << 5
	StatusBatActivation    byte = 1 << 3
	StatusChargeCurrentLow byte = 1 << 2
)

// Power output control register (0x12) flags
const (
	OutputDCDC1 byte = 1 << 0
	OutputDCDC3 byte = 1 << 1
	OutputLDO2  byte = 1 << 2
	OutputLDO3  byte = 1 << 3
	OutputDCDC2 byte = 1 << 4
	OutputExten byte = 1 << 6
)

// LDO2/LDO3 voltage register (0x28) fields; two independent 4-bit rails
// packed in one byte
const (
	LDO3VoltageMask byte = 0x0F
	LDO2VoltageMask byte = 0xF0
	LDO2VoltageShift     = 4
)

// Charge control register 1 (0x33) fields
const (
	ChargeEnable       byte = 1 << 7
	ChargeTargetMask   byte = 0x60
	ChargeEndCurrent15 byte = 1 << 4
	ChargeCurrentMask  byte = 0x0F
)

// VOFF register (0x31) fields
const VoffVoltageMask byte = 0x07

// Shutdown/battery detection/CHGLED register (0x32) fields
const (
	ShutdownBit      byte = 1 << 7
	BatMonitorEnable byte = 1 << 6
)

// ADC enable register 1 (0x82) flags
const (
	ADCBatteryVoltage byte = 1 << 7
	ADCBatteryCurrent byte = 1 << 6
	ADCACINVoltage    byte = 1 << 5
	ADCACINCurrent    byte = 1 << 4
	ADCVBUSVoltage    byte = 1 << 3
	ADCVBUSCurrent    byte = 1 << 2
	ADCAPSVoltage     byte = 1 << 1
	ADCTSInput        byte = 1 << 0
)

// ADC enable register 2 (0x83) flags
const (
	ADCInternalTemp byte = 1 << 7
	ADCGPIO0        byte = 1 << 3
	ADCGPIO1        byte = 1 << 2
	ADCGPIO2        byte = 1 << 1
	ADCGPIO3        byte = 1 << 0
)

// Coulomb counter control register (0xB8) flags
const (
	CoulombEnable byte = 1 << 7
	CoulombPause  byte = 1 << 6
	CoulombClear  byte = 1 << 5
)

// GPIOMode selects a pin function (registers 0x90/0x92/0x93, bits 2:0)
type GPIOMode byte

const (
	GPIOModeNMOSOpenDrain GPIOMode = 0x00
	GPIOModeInput         GPIOMode = 0x01
	GPIOModeLDO           GPIOMode = 0x02 // GPIO0 only, output set via 0x91
	GPIOModeADC           GPIOMode = 0x04
	GPIOModeLow           GPIOMode = 0x05
	GPIOModeFloating      GPIOMode = 0x07
)

const gpioModeMask byte = 0x07

// LDOio voltage field (0x91); the low nibble is reserved by the vendor
const (
	LDOioVoltageMask  byte = 0xF0
	LDOioVoltageShift      = 4
)

var registerNames = map[Register]string{
	RegPowerStatus:       "power status",
	RegChargeStatus:      "charge status",
	RegOTGVBUSStatus:     "OTG VBUS status",
	RegDataBuffer0:       "data buffer 0",
	RegDataBuffer1:       "data buffer 1",
	RegDataBuffer2:       "data buffer 2",
	RegDataBuffer3:       "data buffer 3",
	RegDataBuffer4:       "data buffer 4",
	RegDataBuffer5:       "data buffer 5",
	RegExtenDCDC2Ctl:     "EXTEN / DC-DC2 control",
	RegOutputCtl:         "power output control",
	RegDCDC2Voltage:      "DC-DC2 voltage",
	RegDCDC2Slope:        "DC-DC2 voltage slope",
	RegDCDC1Voltage:      "DC-DC1 voltage",
	RegDCDC3Voltage:      "DC-DC3 voltage",
	RegLDO23Voltage:      "LDO2/LDO3 voltage",
	RegVBUSIPSOut:        "VBUS-IPSOUT path",
	RegVoffVoltage:       "VOFF shutdown voltage",
	RegShutdownBatChgLED: "shutdown / battery detection / CHGLED",
	RegChargeCtl1:        "charge control 1",
	RegChargeCtl2:        "charge control 2",
	RegBackupChargeCtl:   "backup battery charge control",
	RegPEKParams:         "PEK key parameters",
	RegDCDCFrequency:     "DC-DC converter frequency",
	RegVLTFCharge:        "charge low temperature threshold",
	RegVHTFCharge:        "charge high temperature threshold",
	RegAPSLowPower1:      "APS low power level 1",
	RegAPSLowPower2:      "APS low power level 2",
	RegVLTFDischarge:     "discharge low temperature threshold",
	RegVHTFDischarge:     "discharge high temperature threshold",
	RegIRQEnable1:        "IRQ enable 1",
	RegIRQEnable2:        "IRQ enable 2",
	RegIRQEnable3:        "IRQ enable 3",
	RegIRQEnable4:        "IRQ enable 4",
	RegIRQStatus1:        "IRQ status 1",
	RegIRQStatus2:        "IRQ status 2",
	RegIRQStatus3:        "IRQ status 3",
	RegIRQStatus4:        "IRQ status 4",
	RegIRQEnable5:        "IRQ enable 5",
	RegIRQStatus5:        "IRQ status 5",
	RegACINVoltageH:      "ACIN voltage ADC (high)",
	RegACINVoltageL:      "ACIN voltage ADC (low)",
	RegACINCurrentH:      "ACIN current ADC (high)",
	RegACINCurrentL:      "ACIN current ADC (low)",
	RegVBUSVoltageH:      "VBUS voltage ADC (high)",
	RegVBUSVoltageL:      "VBUS voltage ADC (low)",
	RegVBUSCurrentH:      "VBUS current ADC (high)",
	RegVBUSCurrentL:      "VBUS current ADC (low)",
	RegInternalTempH:     "internal temperature ADC (high)",
	RegInternalTempL:     "internal temperature ADC (low)",
	RegTSInputH:          "TS input ADC (high)",
	RegTSInputL:          "TS input ADC (low)",
	RegGPIO0ADCH:         "GPIO0 ADC (high)",
	RegGPIO0ADCL:         "GPIO0 ADC (low)",
	RegGPIO1ADCH:         "GPIO1 ADC (high)",
	RegGPIO1ADCL:         "GPIO1 ADC (low)",
	RegBatteryPowerH:     "battery power (high)",
	RegBatteryPowerM:     "battery power (middle)",
	RegBatteryPowerL:     "battery power (low)",
	RegBatteryVoltageH:   "battery voltage ADC (high)",
	RegBatteryVoltageL:   "battery voltage ADC (low)",
	RegChargeCurrentH:    "battery charge current ADC (high)",
	RegChargeCurrentL:    "battery charge current ADC (low)",
	RegDischargeCurrentH: "battery discharge current ADC (high)",
	RegDischargeCurrentL: "battery discharge current ADC (low)",
	RegAPSVoltageH:       "APS voltage ADC (high)",
	RegAPSVoltageL:       "APS voltage ADC (low)",
	RegADCEnable1:        "ADC enable 1",
	RegADCEnable2:        "ADC enable 2",
	RegADCSampleRate:     "ADC sample rate / TS control",
	RegADCInputRange:     "ADC input range",
	RegGPIO0Ctl:          "GPIO0 control",
	RegGPIO0LDOVoltage:   "GPIO0 LDO mode voltage",
	RegGPIO1Ctl:          "GPIO1 control",
	RegGPIO2Ctl:          "GPIO2 control",
	RegGPIOSignal012:     "GPIO[2:0] signal status",
	RegGPIOCtl34:         "GPIO[4:3] function control",
	RegGPIOSignal34:      "GPIO[4:3] signal status",
	RegGPIOPullDown:      "GPIO pull-down control",
	RegCoulombCharge3:    "charge coulomb counter (byte 3)",
	RegCoulombCharge2:    "charge coulomb counter (byte 2)",
	RegCoulombCharge1:    "charge coulomb counter (byte 1)",
	RegCoulombCharge0:    "charge coulomb counter (byte 0)",
	RegCoulombDischarge3: "discharge coulomb counter (byte 3)",
	RegCoulombDischarge2: "discharge coulomb counter (byte 2)",
	RegCoulombDischarge1: "discharge coulomb counter (byte 1)",
	RegCoulombDischarge0: "discharge coulomb counter (byte 0)",
	RegCoulombCtl:        "coulomb counter control",
}

// LookupName returns the documented name of a register. Registers not in the
// catalog yield ok == false; the chip has vendor-reserved addresses we do
// not list.
func LookupName(reg Register) (string, bool) {
	name, ok := registerNames[reg]
	return name, ok
}

// Name returns the documented register name or an empty string for
// uncatalogued addresses.
func (r Register) Name() string {
	return registerNames[r]
}
