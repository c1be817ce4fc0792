package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/ -interval=5s
func main() {
	urlPtr := flag.String("url", "http://localhost:8080/", "the page to poll")
	intervalPtr := flag.Duration("interval", 5*time.Second, "the time between two attempts")
	flag.Parse()

	var totalWaitTime time.Duration
	for {
		res, err := http.Get(*urlPtr)
		if err == nil {
			res.Body.Close()
			fmt.Println(res.Status)
			if res.StatusCode == http.StatusOK {
				break
			}
		} else {
			fmt.Println(err)
		}
		totalWaitTime += *intervalPtr
		fmt.Printf("Waiting %s", totalWaitTime)
		fmt.Println()
		time.Sleep(*intervalPtr)
	}
}
