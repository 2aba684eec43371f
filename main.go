package main

import "ecolog/cmd"

func main() {
	cmd.Execute()
}
