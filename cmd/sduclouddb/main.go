package main

import "github.com/sducloud/sduclouddb/cmd/sduclouddb/commands"

func main() {
	commands.Execute()
}
