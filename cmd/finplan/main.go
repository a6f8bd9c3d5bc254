package main

import (
	"os"
)

func main() {
	a := newApp()
	if err := a.execute(a.rootCmd()); err != nil {
		os.Exit(1)
	}
}
