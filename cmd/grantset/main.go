// Package main provides the grantset CLI for checking and inspecting
// application permission descriptors.
package main

func main() {
	Execute()
}
