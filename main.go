package main

import "vahedctl/cmd"

func main() {
	cmd.Execute()
}
