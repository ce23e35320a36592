package main

import "github.com/tategaki/kanjiorder/cmd"

func main() {
	cmd.Execute()
}
