package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"lapmatch/internal/delivery/http/response"
	"lapmatch/internal/domain/entity"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LaptopHandler holds dependencies for catalog handlers.
type LaptopHandler struct {
	uc     usecase.LaptopUsecase
	logger *slog.Logger
}

// NewLaptopHandler is the constructor for LaptopHandler, injected by Fx.
func NewLaptopHandler(uc usecase.LaptopUsecase, logger *slog.Logger) *LaptopHandler {
	return &LaptopHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /laptops with query-string pagination, sorting and filters.
func (h *LaptopHandler) List(c echo.Context) error {
	input := usecase.ListLaptopsInput{
		Page:       queryInt(c, "page", 0),
		Limit:      queryInt(c, "limit", 0),
		SortBy:     c.QueryParam("sort_by"),
		SortOrder:  c.QueryParam("sort_order"),
		Brands:     queryCSV(c, "brand"),
		Categories: queryCSV(c, "category"),
		MinPrice:   queryFloat(c, "min_price"),
		MaxPrice:   queryFloat(c, "max_price"),
		MinRAM:     queryFloat(c, "min_ram"),
		MaxRAM:     queryFloat(c, "max_ram"),
	}

	output, err := h.uc.ListLaptops(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Get handles GET /laptops/:id.
func (h *LaptopHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid laptop id")
	}

	laptop, err := h.uc.GetLaptop(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, laptop, "")
}

// Search handles GET /laptops/search?q=...
func (h *LaptopHandler) Search(c echo.Context) error {
	text := c.QueryParam("q")
	limit := queryInt(c, "limit", 0)

	laptops, err := h.uc.SearchLaptops(c.Request().Context(), text, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, laptops, "")
}

// Filter handles POST /laptops/filter with a structured filter selection.
func (h *LaptopHandler) Filter(c echo.Context) error {
	var sel query.FilterSelection
	if err := c.Bind(&sel); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter input")
	}

	laptops, err := h.uc.FilterLaptops(c.Request().Context(), sel)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, laptops, "")
}

// ByBrand handles GET /laptops/brand/:brand.
func (h *LaptopHandler) ByBrand(c echo.Context) error {
	brand := c.Param("brand")
	limit := queryInt(c, "limit", 0)

	laptops, err := h.uc.GetByBrand(c.Request().Context(), brand, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, laptops, "")
}

// ByCategory handles GET /laptops/category/:category.
func (h *LaptopHandler) ByCategory(c echo.Context) error {
	category := c.Param("category")
	limit := queryInt(c, "limit", 0)

	laptops, err := h.uc.GetByCategory(c.Request().Context(), category, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, laptops, "")
}

// Stats handles GET /laptops/stats.
func (h *LaptopHandler) Stats(c echo.Context) error {
	output, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Create handles POST /laptops (admin).
func (h *LaptopHandler) Create(c echo.Context) error {
	var laptop entity.Laptop
	if err := c.Bind(&laptop); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid laptop input")
	}

	if err := h.uc.CreateLaptop(c.Request().Context(), &laptop); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, laptop, "Laptop created")
}

// BulkCreate handles POST /laptops/bulk (admin).
func (h *LaptopHandler) BulkCreate(c echo.Context) error {
	var laptops []*entity.Laptop
	if err := c.Bind(&laptops); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid laptop batch input")
	}

	created, err := h.uc.BulkCreateLaptops(c.Request().Context(), laptops)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int{"created": created}, "Laptops created")
}

// Update handles PUT /laptops/:id (admin).
func (h *LaptopHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid laptop id")
	}

	var laptop entity.Laptop
	if err := c.Bind(&laptop); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid laptop input")
	}
	laptop.ID = id

	if err := h.uc.UpdateLaptop(c.Request().Context(), &laptop); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, laptop, "Laptop updated")
}

// Delete handles DELETE /laptops/:id (admin).
func (h *LaptopHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid laptop id")
	}

	if err := h.uc.DeleteLaptop(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Laptop deleted")
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

// queryFloat parses an optional float query parameter.
func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}

// queryCSV splits a comma-separated query parameter into its values.
func queryCSV(c echo.Context, name string) []string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}
