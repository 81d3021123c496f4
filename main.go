package main

import (
	"os"

	"github.com/testshot/iconmaker/internal/app"
	"github.com/testshot/iconmaker/internal/icon"
)

func main() {
	// No flags or environment are read; the icon is fully determined by
	// its constants. Logging stays off so stdout carries only the result.
	a := app.New(icon.NewRenderer(), os.Stdout)
	if err := a.Run(); err != nil {
		panic(err)
	}
}
