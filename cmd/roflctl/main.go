// Command roflctl inspects League of Legends replay (.rofl) files.
package main

func main() {
	execute()
}
