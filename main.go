package main

import "suredoor/cmd"

func main() {
	cmd.Execute()
}
