package main

import "ssh-roads/cmd"

func main() {
	cmd.Execute()
}
