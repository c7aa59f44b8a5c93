// Command gkit exercises the array and fileutil packages from the shell.
package main

func main() {
	execute()
}
