package main

import "mediastore/cmd"

func main() {
	cmd.Execute()
}
