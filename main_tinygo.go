//go:build tinygo

package main

import (
	"splitdash/app"
	"splitdash/hal"
)

func main() {
	app.Run(hal.New())
}
