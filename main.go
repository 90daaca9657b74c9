package main

import "megabot/cmd"

func main() {
	cmd.Execute()
}
