// services/config/defaultconfigs.go

package config

import "tinygo.org/x/drivers"

// Raspberry Pi Pico with a 240x320 ST7789 on SPI0 shown landscape.
var picoST7789 = Board{
	Name: "pico_st7789",
	SPI:  SPI{ID: "spi0", SCK: 18, SDO: 19, Hz: 62_500_000},
	Panel: Panel{
		Width: 240, Height: 320,
		Rotation: drivers.Rotation270,
		CS:       17, DC: 20, RST: 21,
	},
	Backlight: Backlight{Pin: 22, PWMHz: 1000},
	Lamps: Lamps{
		Touch1: 10, Touch2: 11, Touch3: 12,
		IndicatorR: 13, IndicatorL: 14,
		Head: 15, Brake: 16,
		BrakeActiveLow: true, HeadActiveLow: true,
	},
	Console: Console{UART: "uart0", TX: 0, RX: 1, Baud: 115200},
}

// Same wiring, logs stay on USB.
var picoST7789USB = func() Board {
	b := picoST7789
	b.Name = "pico_st7789_usb"
	b.Console = Console{}
	return b
}()

var embeddedBoards = map[string]Board{
	picoST7789.Name:    picoST7789,
	picoST7789USB.Name: picoST7789USB,
}
