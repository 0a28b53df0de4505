//go:build !tinygo

package main

import "picoled/internal/feed"

func main() {
	feed.Execute()
}
