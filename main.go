package main

import "github.com/atb-labs/tracker/cmd"

func main() {
	cmd.Execute()
}
