package main

import "survey-manager/cmd"

func main() {
	cmd.Execute()
}
