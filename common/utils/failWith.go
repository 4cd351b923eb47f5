package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

type causer interface {
	Cause() error
}

// FailWith prints the error chain and exits.
func FailWith(err error) {
	fmt.Println("")
	fmt.Println(chalk.Red.Color("❌  An error occurred."))
	fmt.Println("")

	fmt.Print(PrintChain(err))

	fmt.Println("")

	os.Exit(1)
}

func WarnWith(err error) {
	fmt.Println("")
	fmt.Println(chalk.Yellow.Color("⚠️  Warning"))
	fmt.Println("")

	fmt.Print(PrintChain(err))

	fmt.Println("")
}

// PrintChain renders a wrapped error as a tree, outermost message first.
func PrintChain(err error) string {
	out := ""
	depth := 0

	for err != nil {
		msg := err.Error()

		var inner error
		if c, ok := err.(causer); ok {
			inner = c.Cause()
		}

		if inner != nil {
			msg = strings.TrimSuffix(msg, inner.Error())
			msg = strings.TrimRight(msg, ": ")
		}

		if msg != "" {
			prefix := strings.Repeat("  ", depth)
			if depth > 0 {
				prefix += "└ "
			}

			out += prefix + msg + "\n"
			depth++
		}

		err = inner
	}

	return out
}

// Root returns the innermost cause of a wrapped error.
func Root(err error) error {
	return errors.Cause(err)
}
