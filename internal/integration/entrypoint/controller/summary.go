// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ledgertree/backend/internal/application/usecase/summary"
	domainerror "github.com/ledgertree/backend/internal/domain/error"
	"github.com/ledgertree/backend/internal/integration/entrypoint/dto"
	"github.com/ledgertree/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles the summary endpoint.
type SummaryController struct {
	getSummaryUseCase *summary.GetSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(getSummaryUseCase *summary.GetSummaryUseCase) *SummaryController {
	return &SummaryController{
		getSummaryUseCase: getSummaryUseCase,
	}
}

// Get handles GET /summary requests. Without query parameters the window
// defaults to the current calendar month.
func (c *SummaryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	from, to := currentMonthWindow(time.Now().UTC())

	if fromStr := ctx.Query("from"); fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid from date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		from = parsed
	}
	if toStr := ctx.Query("to"); toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid to date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		to = parsed
	}

	input := summary.GetSummaryInput{
		UserID: userID,
		From:   from,
		To:     to,
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	response := dto.ToSummaryResponse(output.Summary, from.Format(dateLayout), to.Format(dateLayout))
	ctx.JSON(http.StatusOK, response)
}

// currentMonthWindow returns the first and last day of the month containing now.
func currentMonthWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return from, to
}

// handleSummaryError handles summary errors and returns appropriate HTTP responses.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
