package main

import "github.com/Andyrulz/clinicmanagement-sub000/cmd"

func main() {
	cmd.Execute()
}
