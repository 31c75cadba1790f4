package forbiddencalls

import (
	"log"
	"math/rand" // want "math/rand is forbidden, use crypto/rand"
	"os"
)

func WeakID() int {
	return rand.Intn(64)
}

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden") // want "log.Fatal is forbidden outside main function"
}

func SomeLogFatalfFunction() {
	log.Fatalf("%s", "this is forbidden") // want "log.Fatalf is forbidden outside main function"
}

func SomeOsExitFunction() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func MultipleCallsFunction() {
	panic("panic 1")   // want "panic is forbidden"
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
	os.Exit(0)         // want "os.Exit is forbidden outside main function"
}
