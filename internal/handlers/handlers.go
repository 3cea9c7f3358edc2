package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/example/proofgate/internal/auth"
	"github.com/example/proofgate/internal/geo"
	"github.com/example/proofgate/internal/ledger"
	"github.com/example/proofgate/internal/repository"
	"github.com/example/proofgate/internal/storage"
	"github.com/example/proofgate/internal/usecase"
)

// MaxUploadSize bounds the accepted proof image size.
const MaxUploadSize = 8 << 20

// UseCase is the submission flow the handlers expose.
type UseCase interface {
	SubmitProof(ctx context.Context, req usecase.SubmitRequest) (*usecase.Outcome, error)
	GetResult(ctx context.Context, claimantID, requestID string) (*repository.SubmissionLog, error)
	GetDuplicateReport(ctx context.Context, claimantID, requestID string) (*usecase.DuplicateReport, error)
	GetMetricsSummary(ctx context.Context) (*usecase.MetricsSummary, error)
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, uc UseCase, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := router.Group("/", authMiddleware)

	authed.POST("/submissions", func(c *gin.Context) {
		claimantID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "claimant identity missing"})
			return
		}

		opportunityID := c.PostForm("opportunity_id")
		if opportunityID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "opportunity_id is required"})
			return
		}

		location, err := parseLocation(c)
		if err != nil {
			if errors.Is(err, geo.ErrNoLocation) {
				c.JSON(http.StatusPreconditionRequired, gin.H{"error": "location is required; enable location access and retry"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if file.Size > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}
		if contentType := file.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only image uploads are accepted"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}
		if len(data) > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}

		outcome, err := uc.SubmitProof(c.Request.Context(), usecase.SubmitRequest{
			ClaimantID:    claimantID,
			OpportunityID: opportunityID,
			Filename:      file.Filename,
			Image:         data,
			Location:      location,
		})
		if err != nil {
			writeSubmitError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id":           outcome.RequestID,
			"admissible":           outcome.Evaluation.Admissible,
			"within_radius":        outcome.Evaluation.WithinRadius,
			"verification":         outcome.Evaluation.Verification,
			"content_hash":         outcome.ContentHash,
			"ledger_submission_id": outcome.LedgerSubmissionID,
		})
	})

	authed.GET("/submissions/:id", func(c *gin.Context) {
		claimantID, _ := auth.GetUserID(c.Request.Context())
		requestID := c.Param("id")

		log, err := uc.GetResult(c.Request.Context(), claimantID, requestID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}

		c.JSON(http.StatusOK, submissionJSON(log))
	})

	authed.GET("/submissions/:id/duplicates", func(c *gin.Context) {
		claimantID, _ := auth.GetUserID(c.Request.Context())
		requestID := c.Param("id")

		report, err := uc.GetDuplicateReport(c.Request.Context(), claimantID, requestID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}

		duplicates := make([]gin.H, 0, len(report.Duplicates))
		for _, d := range report.Duplicates {
			duplicates = append(duplicates, submissionJSON(d))
		}
		c.JSON(http.StatusOK, gin.H{
			"request":    submissionJSON(report.Request),
			"duplicates": duplicates,
		})
	})

	authed.GET("/metrics/summary", func(c *gin.Context) {
		summary, err := uc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

func parseLocation(c *gin.Context) (*geo.Point, error) {
	latRaw := c.PostForm("latitude")
	lonRaw := c.PostForm("longitude")
	if latRaw == "" || lonRaw == "" {
		return nil, geo.ErrNoLocation
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, errors.New("latitude must be a decimal degree value")
	}
	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil {
		return nil, errors.New("longitude must be a decimal degree value")
	}

	point := geo.Point{Lat: lat, Lon: lon}
	if err := point.Validate(); err != nil {
		return nil, err
	}
	return &point, nil
}

func writeSubmitError(c *gin.Context, err error) {
	var ledgerErr *ledger.Error
	var uploadErr *storage.UploadError
	switch {
	case errors.Is(err, geo.ErrNoLocation):
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "location is required; enable location access and retry"})
	case errors.Is(err, geo.ErrInvalidCoordinate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrOutsideGeofence):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "you are outside the opportunity's allowed area"})
	case errors.As(err, &ledgerErr), errors.As(err, &uploadErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func submissionJSON(log *repository.SubmissionLog) gin.H {
	return gin.H{
		"request_id":           log.RequestID,
		"claimant_id":          log.ClaimantID,
		"opportunity_id":       log.OpportunityID,
		"category":             log.Category,
		"content_hash":         log.ContentHash,
		"within_radius":        log.WithinRadius,
		"verified":             log.Verified,
		"confidence":           log.Confidence,
		"needs_manual_review":  log.NeedsManualReview,
		"ledger_submission_id": log.LedgerSubmissionID,
		"created_at":           log.CreatedAt,
	}
}
