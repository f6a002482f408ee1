// Command algotrace traces Karatsuba multiplication and the closest-pair
// sweep from the terminal, and serves both engines over HTTP.
package main

func main() {
	Execute()
}
