// Command trackgen builds railway track geometry from OBJ rail-edge paths.
package main

func main() {
	Execute()
}
