//go:build tinygo

package main

import (
	"calcsat/app"
	"calcsat/hal"
)

func main() {
	app.Run(hal.New())
}
