package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Farhadhossain379/pythonFastApi/internal/api/metrics"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

// CustomerHandler serves the customer CRUD routes. All of them sit behind
// the auth gate.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// customerRequest is the body of create and update calls. Omitted fields
// stay nil.
type customerRequest struct {
	Name          *string `json:"NAME" validate:"omitempty,max=255"`
	Address       *string `json:"ADDRESS" validate:"omitempty,max=512"`
	Phone         *string `json:"PHONE" validate:"omitempty,max=64"`
	Fax           *string `json:"FAX" validate:"omitempty,max=64"`
	Email         *string `json:"EMAIL" validate:"omitempty,max=255"`
	ContactPerson *string `json:"CONTACT_PERSON" validate:"omitempty,max=255"`
	Website       *string `json:"WEBSITE" validate:"omitempty,max=255"`
}

func (r customerRequest) toCustomer() domain.Customer {
	return domain.Customer{
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone,
		Fax:           r.Fax,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		Website:       r.Website,
	}
}

func (r customerRequest) toPatch() domain.CustomerPatch {
	return domain.CustomerPatch{
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone,
		Fax:           r.Fax,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		Website:       r.Website,
	}
}

// Create adds a customer.
//
// @Summary      Add customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      customerRequest  true  "Customer fields"
// @Success      200   {object}  domain.Customer
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/addCustomer [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	req, err := bindCustomer(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Create(c.Request().Context(), req.toCustomer())
	observe("create", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// List returns a page of customers.
//
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Rows to skip"  default(0)
// @Param        limit  query     int  false  "Page size (max 1000)"  default(100)
// @Success      200    {array}   domain.Customer
// @Failure      401    {object}  map[string]string
// @Router       /api/getAllCustomers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	skip, limit := 0, 0
	if err := echo.QueryParamsBinder(c).Int("skip", &skip).Int("limit", &limit).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "skip and limit must be integers")
	}
	customers, err := h.service.List(c.Request().Context(), skip, limit)
	observe("list", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns one customer.
//
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/getCustomerById/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Get(c.Request().Context(), id)
	observe("get", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Update changes the fields present in the body.
//
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Customer id"
// @Param        body  body      customerRequest  true  "Fields to change"
// @Success      200   {object}  domain.Customer
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/updateCustomerById/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	req, err := bindCustomer(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Update(c.Request().Context(), id, req.toPatch())
	observe("update", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Delete removes a customer and returns it.
//
// @Summary      Delete customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  domain.Customer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/deleteCustomerById/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Delete(c.Request().Context(), id)
	observe("delete", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

func bindCustomer(c echo.Context) (customerRequest, error) {
	var req customerRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

func customerID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid customer id")
	}
	return id, nil
}

func observe(op string, err error) {
	result := "success"
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	metrics.CustomerOperationsTotal.WithLabelValues(op, result).Inc()
}
