package lispish_test

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/lispish"
	"github.com/xiam/lispish/ast"
)

func ExampleCheck() {
	res, err := lispish.Check([]byte(`(+ 3 4)`), lispish.Options{})
	if err != nil {
		log.Fatal("lispish.Check:", err)
	}

	_ = ast.FprintTokens(os.Stdout, res.Tokens, ast.PrintOptions{})
	// Output:
	// LITERAL              : (
	// ID                   : +
	// INT                  : 3
	// INT                  : 4
	// LITERAL              : )
}

func ExampleParse() {
	root, err := lispish.Parse([]byte(`(define foo 3)`))
	if err != nil {
		log.Fatal("lispish.Parse:", err)
	}

	_ = ast.Fprint(os.Stdout, root, ast.PrintOptions{Width: 1, Indent: "  "})
	// Output:
	// Program
	//   SExpr
	//     List
	//       LITERAL(
	//       Seq
	//         SExpr
	//           Atom
	//             IDdefine
	//         Seq
	//           SExpr
	//             Atom
	//               IDfoo
	//           Seq
	//             SExpr
	//               Atom
	//                 INT3
	//       LITERAL)
}

func ExampleValid() {
	for _, in := range []string{`(+ 3 4)`, `(+ 3 4`, `@#$`} {
		fmt.Printf("%-8s %v\n", in, lispish.Valid([]byte(in)))
	}
	// Output:
	// (+ 3 4)  true
	// (+ 3 4   false
	// @#$      false
}
