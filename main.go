package main

import "kharch/cmd"

func main() {
	cmd.Execute()
}
