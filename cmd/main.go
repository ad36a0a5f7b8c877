package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"appdoctor/cmd/diagnose"
	"appdoctor/cmd/listchecks"
)

func main() {
	cmd := &cobra.Command{
		Use:   "appdoctor",
		Short: "Diagnose a host application installation",
	}

	listchecks.AddCommand(cmd)
	diagnose.AddCommand(cmd)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
