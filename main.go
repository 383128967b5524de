package main

import "competency-matrix/cmd"

func main() {
	cmd.Execute()
}
