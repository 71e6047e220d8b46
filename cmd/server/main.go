package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/artlog/internal/buildinfo"
	"github.com/dmitrijs2005/artlog/internal/server"
	"github.com/dmitrijs2005/artlog/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	server.NewApp(cfg).Run(ctx)
}
