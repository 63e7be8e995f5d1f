package main

import "github.com/khrees2412/jobdesk/cmd"

func main() {
	cmd.Execute()
}
