package main

import "github.com/chishui/ec2-manager/cmd"

func main() {
	cmd.Execute()
}
