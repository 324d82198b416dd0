package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dweil/induct/pkg/relation"
)

func NewRelationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations",
		Short: "List the built-in relations",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range relation.Names() {
				fmt.Println(name)
			}
		},
	}
}
