package main

import "github.com/aalvaropc/teensyflash/internal/cli"

func main() {
	cli.Execute()
}
