package main

import "github.com/integra/explorer/cmd"

func main() {
	cmd.Execute()
}
