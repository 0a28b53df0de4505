//go:build tinygo && baremetal

package main

import (
	"picoled/app"
	"picoled/hal"
)

func main() {
	app.Run(hal.New())
}
