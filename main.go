package main

import "ucs/cmd"

func main() {
	cmd.Execute()
}
