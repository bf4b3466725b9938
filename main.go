package main

import "item-matcher/cmd"

func main() {
	cmd.Execute()
}
