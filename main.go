package main

import "github.com/bme-wacoisd/google-classroom/cmd"

func main() {
	cmd.Execute()
}
