//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	role   Role
	surf   *TextSurface
	keys   *pinKeys
	host   Link
	split  Link
	clock  *tinyGoClock
}

// New returns a Pico (RP2040) HAL implementation.
//
// OLED:  SSD1306 128x64 over I2C0 on GP4 (SDA) / GP5 (SCL), address 0x3C.
// Split: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1, crossed over to the
// other half.
// Host:  USB CDC, master half only.
// Log:   UART1 on GP8 (TX), 115200 8N1.
// Role:  GP22 strap, pulled up; tied to ground on the slave half.
func New() HAL {
	logUART := machine.UART1
	logUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP8,
		RX:       machine.GP9,
	})

	strap := machine.GP22
	strap.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	role := RoleMaster
	if !strap.Get() {
		role = RoleSlave
	}

	i2c := machine.I2C0
	i2c.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Width:   panelWidth,
		Height:  panelHeight,
		Address: 0x3C,
	})
	dev.ClearDisplay()

	splitUART := machine.UART0
	splitUART.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	var host Link
	if role == RoleMaster {
		host = newByteLink(machine.Serial)
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: logUART},
		role:   role,
		surf:   NewTextSurface(&dev),
		keys:   newPinKeys(),
		host:   host,
		split:  newByteLink(splitUART),
		clock:  newTinyGoClock(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Role() Role       { return h.role }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{surf: h.surf} }
func (h *tinyGoHAL) Keys() Keys       { return h.keys }
func (h *tinyGoHAL) Host() Link       { return h.host }
func (h *tinyGoHAL) Split() Link      { return h.split }
func (h *tinyGoHAL) Clock() Clock     { return h.clock }

type tinyGoDisplay struct {
	surf *TextSurface
}

func (d tinyGoDisplay) Surface() Surface { return d.surf }

type tinyGoClock struct {
	start int64
}

func newTinyGoClock() *tinyGoClock {
	return &tinyGoClock{start: nowMillis()}
}

func (c *tinyGoClock) Millis() uint32 {
	return uint32(nowMillis() - c.start)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
