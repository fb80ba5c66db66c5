package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/indo-german-tax/internal/calculation"
	"github.com/rpgo/indo-german-tax/internal/config"
	"github.com/rpgo/indo-german-tax/internal/domain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_deductions <input-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	input, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.GenerateFullReport(*input)
	if err != nil {
		panic(err)
	}

	// Header
	fmt.Println("Person,Gross,Vorsorge,HomeOffice,Commute,Itemized,BankFee,Internet,Werbungskosten,Pauschale")

	d := res.Deductions
	rows := []struct {
		name     string
		person   domain.PersonInput
		vorsorge string
		wk       domain.DeductionResult
	}{
		{"A", input.PersonA, d.VorsorgeA.StringFixed(2), d.PersonA},
		{"B", input.PersonB, d.VorsorgeB.StringFixed(2), d.PersonB},
	}
	for _, r := range rows {
		fmt.Printf("%s,%s,%s,%s,%s,%s,%s,%s,%s,%t\n",
			r.name,
			r.person.GrossSalary.StringFixed(2),
			r.vorsorge,
			r.wk.HomeOffice.StringFixed(2),
			r.wk.Commute.StringFixed(2),
			r.wk.Itemized.StringFixed(2),
			r.wk.BankFee.StringFixed(2),
			r.wk.Internet.StringFixed(2),
			r.wk.Werbungskosten.StringFixed(2),
			r.wk.PauschaleApplied,
		)
	}
	fmt.Printf("Kita,%s\n", d.KitaDeduction.StringFixed(2))
	fmt.Printf("Parents,%s\n", d.ParentsSupportDeduction.StringFixed(2))
	fmt.Printf("Total,%s\n", d.TotalDeductions.StringFixed(2))
	fmt.Printf("zvE,%s\n", res.TaxableIncome.StringFixed(2))
}
