package main

import (
	"github.com/SajidSojib/go-postgres-server/app"
	_ "github.com/SajidSojib/go-postgres-server/docs"
)

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
