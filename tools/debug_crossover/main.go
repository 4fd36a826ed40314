package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/pkg/money"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <config-file>")
		return
	}
	p := config.NewInputParser()
	file, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	for _, sc := range file.Scenarios {
		r := calc.Project(sc.Inputs)
		fmt.Printf("== %s ==\n", sc.Name)
		fmt.Println("Year,TBills,DividendStocks,MixedPortfolio,StocksMinusTBills,MixedMinusTBills")
		for _, row := range r.Comparison {
			fmt.Printf("%d,%s,%s,%s,%s,%s\n", row.Year,
				money.Fixed(row.TBills, 0),
				money.Fixed(row.DividendStocks, 0),
				money.Fixed(row.MixedPortfolio, 0),
				money.Fixed(row.DividendStocks-row.TBills, 0),
				money.Fixed(row.MixedPortfolio-row.TBills, 0))
		}

		tbills := r.Series(domain.StrategyTBills)
		for _, challenger := range []string{domain.StrategyDividendStocks, domain.StrategyMixed} {
			up, err := calc.FindCrossover(challenger, domain.StrategyTBills, r.Series(challenger), tbills)
			fmt.Printf("%s over T-Bills: %+v, err=%v\n", challenger, up, err)
			down, err := calc.FindCrossover(domain.StrategyTBills, challenger, tbills, r.Series(challenger))
			fmt.Printf("T-Bills over %s: %+v, err=%v\n", challenger, down, err)
		}
		fmt.Println()
	}
}
