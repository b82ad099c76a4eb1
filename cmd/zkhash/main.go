// Command zkhash hashes a fixed input with one of the zkhash families and
// proves the evaluation with gnark.
package main

func main() {
	Execute()
}
