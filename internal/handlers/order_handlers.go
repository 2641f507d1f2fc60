package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sejahtera/internal/common"
	"sejahtera/internal/models"
	"sejahtera/internal/repositories"
	"sejahtera/internal/services"

	"github.com/labstack/echo/v4"
)

// OrderHandlers handles the public pages: catalog, order intake, success and
// receipt download.
type OrderHandlers struct {
	orders  services.OrderServiceInterface
	catalog []models.Product
}

func NewOrderHandlers(orders services.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{
		orders:  orders,
		catalog: models.Catalog(),
	}
}

// Index handles GET /
func (h *OrderHandlers) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// Catalog handles GET /catalog
func (h *OrderHandlers) Catalog(c echo.Context) error {
	return c.Render(http.StatusOK, "catalog.html", map[string]interface{}{
		"Products": h.catalog,
	})
}

// OrderForm handles GET /order. Product and price arrive as query params
// when the customer comes from the catalog page.
func (h *OrderHandlers) OrderForm(c echo.Context) error {
	return c.Render(http.StatusOK, "order.html", map[string]interface{}{
		"ProductName": c.QueryParam("product"),
		"Price":       c.QueryParam("price"),
	})
}

// SubmitOrder handles POST /order.
func (h *OrderHandlers) SubmitOrder(c echo.Context) error {
	sub := &services.OrderSubmission{
		SchoolName:    strings.TrimSpace(c.FormValue("school_name")),
		ContactPerson: strings.TrimSpace(c.FormValue("contact_person")),
		Email:         strings.TrimSpace(c.FormValue("email")),
		Phone:         strings.TrimSpace(c.FormValue("phone")),
		Product:       strings.TrimSpace(c.FormValue("product")),
		Quantity:      common.FormInt(c.FormValue("quantity"), 1),
		Price:         common.FormFloat(c.FormValue("price"), 0),
		Notes:         c.FormValue("notes"),
	}

	if sub.SchoolName == "" || sub.ContactPerson == "" || sub.Email == "" || sub.Product == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "school_name, contact_person, email and product are required")
	}

	file, err := c.FormFile("payment_proof")
	if err == nil && file != nil && file.Filename != "" && file.Size > 0 {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not read payment proof")
		}
		defer src.Close()
		sub.Proof = &services.ProofFile{
			Reader:      src,
			Size:        file.Size,
			Filename:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
		}
	}

	order, err := h.orders.Submit(c.Request().Context(), sub)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not process order")
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/success/%d", order.ID))
}

// Success handles GET /success/:id
func (h *OrderHandlers) Success(c echo.Context) error {
	id, err := parseOrderID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	order, err := h.orders.GetByID(c.Request().Context(), id)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load order")
	}

	return c.Render(http.StatusOK, "success.html", map[string]interface{}{
		"Order": order,
	})
}

// DownloadPDF handles GET /download_pdf/:id. The receipt is rendered fresh
// on every request.
func (h *OrderHandlers) DownloadPDF(c echo.Context) error {
	id, err := parseOrderID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	receipt, err := h.orders.Receipt(c.Request().Context(), id)
	if errors.Is(err, repositories.ErrOrderNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not render receipt")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", services.ReceiptFilename(id)))
	return c.Blob(http.StatusOK, "application/pdf", receipt)
}

func parseOrderID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
