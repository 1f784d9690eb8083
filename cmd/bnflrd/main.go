/*
Bnflrd serves the table generator over HTTP: POST a BNF grammar to /generate
and get back the GPF artifact.

Usage:

	bnflrd [flags]

Flags:

	-a, --addr ADDR
		Address to listen on. Defaults to ":8080".

	-s, --strict
		Respond with HTTP 422 if any diagnostic was reported during the
		build, not only a fatal GrammarInconsistent at load time.
*/
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dekarrin/bnflr/internal/version"
	"github.com/spf13/pflag"
)

func main() {
	addr := pflag.StringP("addr", "a", ":8080", "address to listen on")
	strict := pflag.BoolP("strict", "s", false, "treat any reported diagnostic as a build failure")
	showVersion := pflag.BoolP("version", "v", false, "print the version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("bnflrd %s\n", version.Current)
		os.Exit(0)
	}

	srv := NewServer(*strict)

	fmt.Printf("bnflrd listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
