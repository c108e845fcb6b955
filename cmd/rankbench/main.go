package main

import (
	"context"
	"os"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mosa-ranking/cmd/rankbench/app"
)

func main() {
	defer klog.Flush()

	cmd := app.NewRankbenchCommand(os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
