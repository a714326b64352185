package matchresponse

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/DhavalSuthar-24/crease/internal/common"
	crvalidator "github.com/DhavalSuthar-24/crease/pkg/validator"
)

// jsonSuccessResponse is the structure for successful responses.
type jsonSuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// jsonErrorResponse is the structure for error responses.
type jsonErrorResponse struct {
	Status  string      `json:"status"` // "error" or "fail"
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Kind    common.Kind `json:"kind,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type jsonPaginatedResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// statusText separates client errors from server failures.
func statusText(code int) string {
	if code >= http.StatusInternalServerError {
		return "fail"
	}
	return "error"
}

// ErrorResponse sends a standardized error JSON response.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// StatusFor maps a domain error kind onto an HTTP status.
func StatusFor(kind common.Kind) int {
	switch kind {
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindInvalidState:
		return http.StatusConflict
	case common.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// DomainError reports err using its classification. Unclassified errors are
// logged and hidden behind a generic computation failure.
func DomainError(c *gin.Context, err error) {
	kind := common.KindOf(err)
	status := StatusFor(kind)

	message := err.Error()
	var details interface{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		details = formatValidationErrors(ve)
	}

	var de *common.Error
	if !errors.As(err, &de) || kind == common.KindComputation {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		message = "computation failed"
	}

	c.AbortWithStatusJSON(status, jsonErrorResponse{
		Status:  statusText(status),
		Message: message,
		Code:    status,
		Kind:    kind,
		Errors:  details,
	})
}

// formatValidationErrors keys each message by the lowercased field name.
func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formatted := make(map[string]string, len(errs))
	for _, fe := range errs {
		formatted[strings.ToLower(fe.Field())] = crvalidator.Message(fe)
	}
	return formatted
}

// ValidationErrorResponse sends a structured JSON response for validation errors
// originating from `c.ShouldBindJSON()` or similar.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, jsonErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Kind:    common.KindValidation,
			Errors:  formatValidationErrors(ve),
		})
		return
	}
	// For other binding errors (e.g., malformed JSON)
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse sends a standardized success JSON response.
// A gin.H carrying a string "message" key has that key lifted to the top level.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := jsonSuccessResponse{
		Status: "success",
	}

	if gh, ok := responseData.(gin.H); ok {
		if msgStr, isStr := gh["message"].(string); isStr {
			payload.Message = msgStr
			dataMap := make(gin.H)
			for k, v := range gh {
				if k != "message" {
					dataMap[k] = v
				}
			}
			if len(dataMap) > 0 {
				payload.Data = dataMap
			}
		} else {
			payload.Data = responseData
		}
	} else if responseData != nil {
		payload.Data = responseData
	}

	c.JSON(statusCode, payload)
}

// PaginatedResponse sends a standardized success JSON response for paginated data.
func PaginatedResponse(c *gin.Context, statusCode int, itemsData interface{}, currentPage int, pageSize int, totalItems int64) {
	if pageSize <= 0 {
		pageSize = 10
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	c.JSON(statusCode, jsonPaginatedResponse{
		Status: "success",
		Data:   itemsData,
		Pagination: pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: currentPage,
			PageSize:    pageSize,
			HasNextPage: currentPage < totalPages,
			HasPrevPage: currentPage > 1 && currentPage <= totalPages,
		},
	})
}

// ParseID reads a numeric path parameter, answering 400 when it is malformed.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}
