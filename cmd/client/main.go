package main

import "github.com/lakhweratechnologies3/apptodopro/cmd/client/cmd"

func main() {
	cmd.Execute()
}
