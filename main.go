package main

import "chat-agent/cmd"

func main() {
	cmd.Execute()
}
