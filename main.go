package main

import "company-registry/cmd"

func main() {
	cmd.Execute()
}
