package main

import (
	"github.com/auctionhaus/go-auctionhaus/server"
)

func main() {
	server.Init()
}
