package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var firstNames = []string{"Ada", "Grace", "Alan", "Barbara", "Edsger", "Frances"}
var lastNames = []string{"Lovelace", "Hopper", "Turing", "Liskov", "Dijkstra", "Allen"}

// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/
//
// The page lists every user, so the GET column grows with the number of users already stored.
func main() {
	urlPtr := flag.String("url", "http://localhost:8080/", "the address of the user form")
	flag.Parse()

	fmt.Println()
	fmt.Println("  Elements      POST       GET ")
	fmt.Println("-------------------------------")
	sizes := []int{100, 500, 1000, 5000}
	for _, loops := range sizes {
		fmt.Printf("%10d", loops)
		{
			// POST requests
			var duration int64
			for i := 0; i < loops; i++ {
				duration += sendRequest(http.MethodPost, *urlPtr, randomForm(i))
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		{
			// GET requests
			var duration int64
			for i := 0; i < loops; i++ {
				duration += sendRequest(http.MethodGet, *urlPtr, nil)
			}
			fmt.Printf("%10d", duration/int64(loops*1000))
		}
		fmt.Println()
	}
}

// randomForm builds a form-encoded body for the i-th generated user.
func randomForm(i int) io.Reader {
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	form := url.Values{}
	form.Set("firstName", first)
	form.Set("lastName", last)
	form.Set("email", strings.ToLower(first+"."+last)+"@example.com")
	form.Set("phone", "+1 555 "+strconv.Itoa(1000+i))
	return strings.NewReader(form.Encode())
}

// sendRequest executes the request and returns its duration in nanoseconds.
func sendRequest(method string, requestURL string, bodyReader io.Reader) int64 {
	req, err := http.NewRequest(method, requestURL, bodyReader)
	if err != nil {
		fmt.Println("could not create request", err)
		panic(err)
	}
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	before := time.Now().UnixNano()
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	if _, err := io.ReadAll(res.Body); err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	if res.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("unexpected status %s", res.Status))
	}
	after := time.Now().UnixNano()
	return after - before
}
