package main

import (
	"fmt"
	"os"
)

// @title Livestock Records API
// @version 1.0
// @description Registro de vacas y terneros: salud, preñez, medicación, producción de leche y reportes.
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
