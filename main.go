package main

import (
	"github.com/leniks/cinema2/cmd"
)

func main() {
	cmd.Execute()
}
