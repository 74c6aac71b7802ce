package pmic

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

type AddressableReader interface {
	ReadFromAddr(ctx context.Context, address byte, buffer []byte) error
}

type AddressableWriter interface {
	WriteToAddr(ctx context.Context, address byte, buffer []byte) error
	Release(ctx context.Context) error
}

// I2CBus is the register-access collaborator the chip drivers talk through.
// Implementations live in i2c (periph.io), adapter (MCP2221 USB bridge)
// and gobotio (gobot adaptors).
type I2CBus interface {
	AddressableReader
	AddressableWriter
}
