// Command izquery compiles YAML statement documents into parameterized SQL.
package main

import (
	"os"

	"github.com/izayoijiichan/izayoi-data-query/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
