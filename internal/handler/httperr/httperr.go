package httperr

import (
	"net/http"

	"parking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type classified struct {
	target error
	status int
	code   string
}

// Order matters: the first matching mark wins.
var taxonomy = []classified{
	{errs.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrNotParked, http.StatusNotFound, "NOT_PARKED"},
	{errs.ErrAlreadyParked, http.StatusConflict, "ALREADY_PARKED"},
	{errs.ErrNoCapacity, http.StatusConflict, "NO_CAPACITY"},
	{errs.ErrAlreadyPaid, http.StatusConflict, "ALREADY_PAID"},
	{errs.ErrInvalidState, http.StatusConflict, "INVALID_STATE"},
	{errs.ErrConflict, http.StatusConflict, "CONFLICT"},
	{errs.ErrInvalidInterval, http.StatusBadRequest, "INVALID_INTERVAL"},
	{errs.ErrValidation, http.StatusBadRequest, "VALIDATION"},
	{errs.ErrAmountMismatch, http.StatusUnprocessableEntity, "AMOUNT_MISMATCH"},
}

// Classify maps an engine error to its HTTP status and stable code.
func Classify(err error) (int, string) {
	t := classify(err)
	return t.status, t.code
}

func classify(err error) classified {
	for _, t := range taxonomy {
		if errs.Is(err, t.target) {
			return t
		}
	}
	return classified{status: http.StatusInternalServerError, code: "INTERNAL"}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, "", err, msg, detail)
}

// FromError answers with the status derived from the error taxonomy.
// Internal failures never leak their message.
func FromError(c *gin.Context, err error) {
	t := classify(err)
	msg := "Internal server error"
	if t.target != nil {
		msg = t.target.Error()
	}
	abort(c, t.status, t.code, err, msg, nil)
}

func abort(c *gin.Context, status int, code string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
