package main

import (
	"os"

	"github.com/DRSN-tech/petstore-backend/internal/app"
	config "github.com/DRSN-tech/petstore-backend/internal/cfg"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

//	@title			Petstore Backend API
//	@version		1.0
//	@description	REST API интернет-магазина зоотоваров: каталог, корзина, заказы и админская сводка

//	@BasePath	/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
