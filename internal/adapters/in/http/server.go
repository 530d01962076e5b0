// Package http is the inbound HTTP adapter: echo handlers translating
// requests into commands and queries, and application errors into
// status codes.
package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"cargopay/api"
	"cargopay/internal/core/application/usecases/commands"
	"cargopay/internal/core/application/usecases/queries"
	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/core/domain/model/kernel"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/core/domain/model/verification"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// defaultCodeTTL is the access code validity window used when dispatch
// does not choose one.
const defaultCodeTTL = 72 * time.Hour

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openVerificationHandler     commands.OpenVerificationCommandHandler
	updateVerificationHandler   commands.UpdateVerificationCommandHandler
	completeVerificationHandler commands.CompleteVerificationCommandHandler
	createAssignmentHandler     commands.CreateAssignmentCommandHandler
	identifyDriverHandler       commands.IdentifyDriverCommandHandler
	cancelDeliveryHandler       commands.CancelDeliveryCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler

	// Query handlers
	getCollectionByCodeHandler   queries.GetCollectionByCodeQueryHandler
	getPendingCollectionsHandler queries.GetPendingCollectionsQueryHandler
	getVerificationHandler       queries.GetVerificationQueryHandler
}

// NewServer creates a new HTTP server with the required command and
// query handlers. The embedded OpenAPI document is validated here so a
// broken contract fails startup instead of serving.
func NewServer(
	openVerificationHandler commands.OpenVerificationCommandHandler,
	updateVerificationHandler commands.UpdateVerificationCommandHandler,
	completeVerificationHandler commands.CompleteVerificationCommandHandler,
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	identifyDriverHandler commands.IdentifyDriverCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getCollectionByCodeHandler queries.GetCollectionByCodeQueryHandler,
	getPendingCollectionsHandler queries.GetPendingCollectionsQueryHandler,
	getVerificationHandler queries.GetVerificationQueryHandler,
) (*Server, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(api.Spec())
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi spec: %w", err)
	}

	return &Server{
		openVerificationHandler:      openVerificationHandler,
		updateVerificationHandler:    updateVerificationHandler,
		completeVerificationHandler:  completeVerificationHandler,
		createAssignmentHandler:      createAssignmentHandler,
		identifyDriverHandler:        identifyDriverHandler,
		cancelDeliveryHandler:        cancelDeliveryHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		getCollectionByCodeHandler:   getCollectionByCodeHandler,
		getPendingCollectionsHandler: getPendingCollectionsHandler,
		getVerificationHandler:       getVerificationHandler,
	}, nil
}

// RegisterRoutes binds every handler onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/verifications", s.OpenVerification)
	v1.PUT("/verifications/:id", s.UpdateVerification)
	v1.GET("/verifications/:id", s.GetVerification)
	v1.POST("/verifications/:id/complete", s.CompleteVerification)

	v1.POST("/assignments", s.CreateAssignment)
	v1.GET("/assignments/pending", s.GetPendingAssignments)

	v1.GET("/collections/:code", s.GetCollectionByCode)
	v1.POST("/collections/:code/driver", s.IdentifyDriver)
	v1.POST("/collections/:code/cancel", s.CancelDelivery)
	v1.POST("/collections/:code/complete", s.CompleteDelivery)

	e.GET("/openapi.yml", s.GetOpenAPISpec)
	e.GET("/health", s.Health)
}

// OpenVerification handles POST /api/v1/verifications - opens a draft
// verification record for a shipment request.
func (s *Server) OpenVerification(ctx echo.Context) error {
	var request OpenVerificationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID, err := kernel.UUIDFromBytes(request.RequestID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	verificationID := kernel.NewUUID()

	command, err := commands.NewOpenVerificationCommand(
		verificationID,
		requestID,
		rates.Route(request.Route),
		kernel.NewWeightFromGrams(request.ActualWeightGrams),
		kernel.NewWeightFromGrams(request.VolumetricWeightGrams),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.openVerificationHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OpenVerificationResponse{
		VerificationID: verificationID.Bytes(),
	})
}

// UpdateVerification handles PUT /api/v1/verifications/:id - applies
// operator input to a draft record and recomputes the derived fields.
func (s *Server) UpdateVerification(ctx echo.Context) error {
	verificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid verification ID")
	}

	var request UpdateVerificationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	manualRate, err := kernel.NewMoneyFromMinorUnits(request.ManualRatePerKg)
	if err != nil {
		return respondError(ctx, err)
	}

	input := verification.Input{
		InvoiceNumber:    request.InvoiceNumber,
		TrackingNumber:   request.TrackingNumber,
		Route:            rates.Route(request.Route),
		ActualWeight:     kernel.NewWeightFromGrams(request.ActualWeightGrams),
		VolumetricWeight: kernel.NewWeightFromGrams(request.VolumetricWeightGrams),
		ManualRatePerKg:  manualRate,
		BoxCount:         request.BoxCount,
		Classification:   verification.Classification(request.Classification),
		CargoService:     verification.CargoService(request.CargoService),
		ReceiverAddress:  request.ReceiverAddress,
		ReceiverPhone:    request.ReceiverPhone,
		OperatorName:     request.OperatorName,
		SenderChecked:    request.SenderChecked,
		ReceiverChecked:  request.ReceiverChecked,
	}

	command, err := commands.NewUpdateVerificationCommand(verificationID, input)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateVerificationHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVerification handles GET /api/v1/verifications/:id - retrieves one
// verification record with its derived billing fields.
func (s *Server) GetVerification(ctx echo.Context) error {
	verificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid verification ID")
	}

	query, err := queries.NewGetVerificationQuery(verificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	record, err := s.getVerificationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Verification{
		VerificationID:        record.VerificationID.Bytes(),
		RequestID:             record.RequestID.Bytes(),
		InvoiceNumber:         record.InvoiceNumber,
		TrackingNumber:        record.TrackingNumber,
		Route:                 record.Route,
		ActualWeightGrams:     record.ActualWeight.Grams(),
		VolumetricWeightGrams: record.VolumetricWeight.Grams(),
		ChargeableWeightGrams: record.ChargeableWeight.Grams(),
		WeightType:            record.WeightType,
		RatePerKg:             record.RatePerKg.MinorUnits(),
		BracketLabel:          record.BracketLabel,
		RateIsManual:          record.RateIsManual,
		Amount:                record.Amount.MinorUnits(),
		BoxCount:              record.BoxCount,
		Classification:        record.Classification,
		CargoService:          record.CargoService,
		ReceiverAddress:       record.ReceiverAddress,
		ReceiverPhone:         record.ReceiverPhone,
		OperatorName:          record.OperatorName,
		SenderChecked:         record.SenderChecked,
		ReceiverChecked:       record.ReceiverChecked,
		CompletedAt:           record.CompletedAt,
		IsCompleted:           record.IsCompleted,
	})
}

// CompleteVerification handles POST /api/v1/verifications/:id/complete -
// freezes a fully filled record so dispatch can rely on its amount.
func (s *Server) CompleteVerification(ctx echo.Context) error {
	verificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid verification ID")
	}

	command, err := commands.NewCompleteVerificationCommand(verificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeVerificationHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateAssignment handles POST /api/v1/assignments - dispatches a
// delivery assignment for a completed verification, minting an access
// code.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var request CreateAssignmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	verificationID, err := kernel.UUIDFromBytes(request.VerificationID[:])
	if err != nil {
		return respondError(ctx, err)
	}

	codeTTL := defaultCodeTTL
	if request.CodeTtlHours > 0 {
		codeTTL = time.Duration(request.CodeTtlHours) * time.Hour
	}

	assignmentID := kernel.NewUUID()

	command, err := commands.NewCreateAssignmentCommand(assignmentID, verificationID, codeTTL)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createAssignmentHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateAssignmentResponse{
		AssignmentID: assignmentID.Bytes(),
	})
}

// GetPendingAssignments handles GET /api/v1/assignments/pending -
// retrieves the dashboard list of undelivered assignments.
func (s *Server) GetPendingAssignments(ctx echo.Context) error {
	query := queries.NewGetPendingCollectionsQuery()

	pending, err := s.getPendingCollectionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingCollection, len(pending))
	for i, item := range pending {
		response[i] = PendingCollection{
			AssignmentID:       item.AssignmentID.Bytes(),
			TrackingNumber:     item.TrackingNumber,
			Amount:             item.Amount.MinorUnits(),
			AccessCode:         item.AccessCode,
			CodeExpiresAt:      item.CodeExpiresAt,
			DriverName:         item.DriverName,
			DriverPhone:        item.DriverPhone,
			CancellationReason: item.CancellationReason,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCollectionByCode handles GET /api/v1/collections/:code - the
// driver's code-gated entry point onto the collection page.
func (s *Server) GetCollectionByCode(ctx echo.Context) error {
	query, err := queries.NewGetCollectionByCodeQuery(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.getCollectionByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Collection{
		AssignmentID:       page.AssignmentID.Bytes(),
		VerificationID:     page.VerificationID.Bytes(),
		Amount:             page.Amount.MinorUnits(),
		InvoiceNumber:      page.InvoiceNumber,
		TrackingNumber:     page.TrackingNumber,
		BoxCount:           page.BoxCount,
		ReceiverAddress:    page.ReceiverAddress,
		ReceiverPhone:      page.ReceiverPhone,
		DriverName:         page.DriverName,
		DriverPhone:        page.DriverPhone,
		HasDriver:          page.HasDriver,
		Delivered:          page.Delivered,
		PaymentCollected:   page.PaymentCollected,
		PaymentMethod:      page.PaymentMethod,
		PaymentReference:   page.PaymentReference,
		PaymentProofRef:    page.PaymentProofRef,
		PaymentConfirmedBy: page.PaymentConfirmedBy,
		CancellationReason: page.CancellationReason,
		CodeExpiresAt:      page.CodeExpiresAt,
		AlreadyProcessed:   page.AlreadyProcessed,
		Expired:            page.Expired,
		EntryStage:         page.EntryStage.String(),
	})
}

// IdentifyDriver handles POST /api/v1/collections/:code/driver - locks
// the driver identity behind an access code. The first writer wins; a
// different identity on the same code conflicts.
func (s *Server) IdentifyDriver(ctx echo.Context) error {
	var request IdentifyDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewIdentifyDriverCommand(
		ctx.Param("code"),
		request.DriverName,
		request.DriverPhone,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.identifyDriverHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles POST /api/v1/collections/:code/cancel - records
// a failed attempt; the access code stays live for a retry.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	var request CancelDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	command, err := commands.NewCancelDeliveryCommand(ctx.Param("code"), request.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/collections/:code/complete -
// records the collected payment from a multipart form, streaming an
// optional proof image to storage. A replayed submission returns the
// recorded facts without a second mutation.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var (
		proof            io.Reader
		proofContentType string
	)

	if fileHeader, err := ctx.FormFile("proof"); err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return badRequest(ctx, "Invalid proof image")
		}
		defer file.Close()

		proof = file
		proofContentType = fileHeader.Header.Get("Content-Type")
	}

	command, err := commands.NewCompleteDeliveryCommand(
		ctx.Param("code"),
		assignment.PaymentMethod(ctx.FormValue("method")),
		ctx.FormValue("reference"),
		ctx.FormValue("confirmedBy"),
		proof,
		proofContentType,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteDeliveryResponse{
		AlreadyProcessed: result.AlreadyProcessed,
		Amount:           result.Amount.MinorUnits(),
		Method:           string(result.Method),
		Reference:        result.Reference,
		ProofRef:         result.ProofRef,
		ConfirmedBy:      result.ConfirmedBy,
	})
}

// GetOpenAPISpec handles GET /openapi.yml - serves the embedded
// contract.
func (s *Server) GetOpenAPISpec(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", api.Spec())
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
