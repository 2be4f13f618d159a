package main

import (
	"github.com/Himanagi/Calorie-tracker-app/config"
	"github.com/Himanagi/Calorie-tracker-app/middlewares"
	"github.com/Himanagi/Calorie-tracker-app/routes"
)

func main() {
	config.InitDB()
	middlewares.InitMetrics()
	r := routes.SetupRouter()
	r.Run(":8080")
}
