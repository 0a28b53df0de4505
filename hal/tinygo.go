//go:build tinygo && baremetal

package hal

import (
	"encoding/hex"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	panelWidth   = 128
	panelHeight  = 32
	panelAddress = 0x3C
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	panel  *ssd1306.Device
	serial *usbSerial
	clock  tinyGoClock
	ident  string
}

// New returns a Raspberry Pi Pico HAL implementation.
//
// Panel: SSD1306 128x32 on I2C0, GP16 (SDA) / GP17 (SCL), 1 MHz.
// Telemetry: USB CDC. Debug log: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	logger := &uartLogger{uart: uart}
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 1_000_000,
		SDA:       machine.GP16,
		SCL:       machine.GP17,
	}); err != nil {
		Logf(logger, "hal: i2c0 configure: %v", err)
	}

	// The controller ignores commands for a short while after power-up.
	time.Sleep(250 * time.Millisecond)

	panel := ssd1306.NewI2C(i2c)
	panel.Configure(ssd1306.Config{
		Address: panelAddress,
		Width:   panelWidth,
		Height:  panelHeight,
	})
	panel.ClearDisplay()

	return &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		panel:  panel,
		serial: &usbSerial{port: machine.Serial},
		ident:  boardIdentity(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Panel() Panel     { return h.panel }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
func (h *tinyGoHAL) Clock() Clock     { return h.clock }
func (h *tinyGoHAL) Identity() string { return h.ident }

func boardIdentity() string {
	id := machine.DeviceID()
	if len(id) == 0 {
		return "pico"
	}
	return hex.EncodeToString(id)
}
