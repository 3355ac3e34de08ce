//go:build tinygo

package main

import (
	"m5boot/app"
	"m5boot/hal"
)

func main() {
	app.Run(hal.New())
}
