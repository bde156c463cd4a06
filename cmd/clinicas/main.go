package main

import "github.com/dentalanalytics/clinicas/cmd/clinicas/command"

func main() {
	command.Execute()
}
