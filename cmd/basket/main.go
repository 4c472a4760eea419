// Command basket mines frequent itemsets and association rules from
// transaction files.
//
// Examples:
//
//	basket mine baskets.csv --min-support 0.02
//	basket rules baskets.csv -s 0.02 -c 0.6 --where "lift > 1.2" --sort lift
//	basket generate -n 10000 --items 200 --density 0.03 --plant 1,2,3 > baskets.csv
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
