package main

import (
	"github.com/Piyush-Singh-Chauhan/zuinder-api/cmd"
)

func main() {
	cmd.Execute()
}
