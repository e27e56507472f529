package main

import (
	"context"
	"os"

	"github.com/yigitates17/Article-App/cmd"
)

func main() {
	if err := cmd.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
