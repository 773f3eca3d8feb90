package main

import (
	"github.com/nguyentranbao-ct/price-scout/cmd"
)

func main() {
	cmd.Execute()
}
