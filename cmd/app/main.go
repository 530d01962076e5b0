package main

import (
	"fmt"
	"log/slog"
	"os"

	"cargopay/cmd"
	_ "cargopay/docs"
	"cargopay/internal/adapters/in/http"
	"cargopay/internal/adapters/out/postgres/assignmentrepo"
	"cargopay/internal/adapters/out/postgres/proofrepo"
	"cargopay/internal/adapters/out/postgres/verificationrepo"
	"cargopay/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := cmd.LoadConfig()

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		// TranslateError turns driver duplicate-key failures into
		// gorm.ErrDuplicatedKey, which the repositories map to conflicts.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&verificationrepo.VerificationRecordDTO{},
		&assignmentrepo.DeliveryAssignmentDTO{},
		&proofrepo.ProofDTO{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	root, err := cmd.NewCompositionRoot(gormDB)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(root.CreateExpireAccessCodesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server, err := http.NewServer(
		root.CreateOpenVerificationCommandHandler(),
		root.CreateUpdateVerificationCommandHandler(),
		root.CreateCompleteVerificationCommandHandler(),
		root.CreateCreateAssignmentCommandHandler(),
		root.CreateIdentifyDriverCommandHandler(),
		root.CreateCancelDeliveryCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateGetCollectionByCodeQueryHandler(),
		root.CreateGetPendingCollectionsQueryHandler(),
		root.CreateGetVerificationQueryHandler(),
	)
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	e := echo.New()
	server.RegisterRoutes(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
