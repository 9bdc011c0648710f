package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/middleware"
)

// referenceHandler proxies the reference lists from the finance backend.
type referenceHandler struct {
	referenceService portssvc.ReferenceSvcFacade
}

func newReferenceHandler(rs portssvc.ReferenceSvcFacade) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

// registerReferenceRoutes registers the reference list routes.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceSvcFacade) {
	h := newReferenceHandler(referenceService)

	rg.GET("/users", h.listUsers)
	rg.GET("/departments", h.listDepartments)
	rg.GET("/expense-categories", h.listExpenseCategories)
}

// listUsers godoc
// @Summary List users
// @Tags reference
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *referenceHandler) listUsers(c *gin.Context) {
	users, err := h.referenceService.ListUsers(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to list users", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// listDepartments godoc
// @Summary List departments
// @Tags reference
// @Produce json
// @Success 200 {array} dto.DepartmentResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *referenceHandler) listDepartments(c *gin.Context) {
	departments, err := h.referenceService.ListDepartments(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to list departments", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// listExpenseCategories godoc
// @Summary List expense categories
// @Tags reference
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {array} dto.ExpenseCategoryResponse
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *referenceHandler) listExpenseCategories(c *gin.Context) {
	categories, err := h.referenceService.ListExpenseCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to list expense categories", slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
