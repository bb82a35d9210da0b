package main

import (
	"fmt"
	"os"

	"budgetlytic/expense-ai/cmd/bill"
	"budgetlytic/expense-ai/cmd/category"
	"budgetlytic/expense-ai/cmd/root"
	"budgetlytic/expense-ai/cmd/suggest"
)

func init() {
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(bill.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
