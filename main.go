package main

import "github.com/saadjs/fitmentor/cmd/fitmentor"

func main() {
	fitmentor.Execute()
}
