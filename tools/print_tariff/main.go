package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/indo-german-tax/internal/calculation"
)

func main() {
	table := calculation.DefaultYearTable()
	itc := calculation.NewIncomeTaxCalculator(table)

	incomes := []int64{10000, 12000, 17005, 25000, 40000, 66760, 100000, 277825, 400000}

	for _, married := range []bool{false, true} {
		status := "single"
		if married {
			status = "married"
		}
		fmt.Printf("Tariff (%s):\n", status)
		fmt.Printf("%10s", "zvE")
		for _, y := range table.Years() {
			fmt.Printf("%14d", y)
		}
		fmt.Println()
		for _, inc := range incomes {
			x := decimal.NewFromInt(inc)
			fmt.Printf("%10d", inc)
			for _, y := range table.Years() {
				tax, err := itc.CalculateTax(x, y, married)
				if err != nil {
					panic(err)
				}
				fmt.Printf("%14s", tax.StringFixed(2))
			}
			fmt.Println()
		}
		fmt.Println()
	}
}
