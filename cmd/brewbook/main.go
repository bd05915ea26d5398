package main

import "github.com/heathcliff26/brewbook/pkg/server"

func main() {
	server.Execute()
}
