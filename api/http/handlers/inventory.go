package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mshaffan/inventory-api/api/http/presenter"
	"github.com/mshaffan/inventory-api/pkg/inventory"
	"github.com/mshaffan/inventory-api/pkg/security/jwt"
	"github.com/mshaffan/inventory-api/pkg/validation"
)

// InventoryHandler serves the per-user inventory CRUD. Every route sits
// behind the auth middleware; the verified user id scopes each operation.
type InventoryHandler struct {
	uc  inventory.UseCase
	log zerolog.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log zerolog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

type createItemRequest struct {
	ProductName  string `json:"productName" validate:"required"`
	BuyingPrice  string `json:"buyingPrice" validate:"required"`
	SellingPrice string `json:"sellingPrice" validate:"required"`
	SupplierName string `json:"supplierName" validate:"required"`
	Category     string `json:"category" validate:"required"`
}

type updateItemRequest struct {
	ProductName  *string `json:"productName"`
	BuyingPrice  *string `json:"buyingPrice"`
	SellingPrice *string `json:"sellingPrice"`
	SupplierName *string `json:"supplierName"`
	Category     *string `json:"category"`
}

type itemResponse struct {
	ID           string    `json:"id"`
	User         string    `json:"user"`
	ProductName  string    `json:"productName"`
	BuyingPrice  string    `json:"buyingPrice"`
	SellingPrice string    `json:"sellingPrice"`
	SupplierName string    `json:"supplierName"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toItemResponse(item inventory.Item) itemResponse {
	return itemResponse{
		ID:           item.ID.String(),
		User:         item.OwnerID.String(),
		ProductName:  item.ProductName,
		BuyingPrice:  item.BuyingPrice,
		SellingPrice: item.SellingPrice,
		SupplierName: item.SupplierName,
		Category:     item.Category,
		CreatedAt:    item.CreatedAt,
	}
}

// List returns the caller's inventory, newest first.
// @Summary List inventory items of the current user
// @Tags    inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} itemResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Token is not valid")
	}
	limit, offset := parseLimitOffset(c, 50)

	items, err := h.uc.List(c.Context(), userID, limit, offset)
	if err != nil {
		h.log.Error().Err(err).Msg("inventory list failed")
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Create adds a product to the caller's inventory.
// @Summary Create a new inventory item
// @Tags    inventory
// @Accept  json
// @Produce json
// @Param   input body createItemRequest true "product payload"
// @Security BearerAuth
// @Success 201 {object} itemResponse
// @Failure 400 {object} presenter.ValidationResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Token is not valid")
	}
	var req createItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if errs := validation.Validate(req); errs != nil {
		return presenter.ValidationErrors(c, errs)
	}

	item, err := h.uc.Create(c.Context(), inventory.Item{
		OwnerID:      userID,
		ProductName:  req.ProductName,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		SupplierName: req.SupplierName,
		Category:     req.Category,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("inventory create failed")
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	return presenter.JSON(c, http.StatusCreated, toItemResponse(item))
}

// Update applies a partial update to one of the caller's items.
// @Summary Update an inventory item by ID
// @Tags    inventory
// @Accept  json
// @Produce json
// @Param   id path string true "item ID (UUID)"
// @Param   input body updateItemRequest true "fields to update"
// @Security BearerAuth
// @Success 200 {object} itemResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Token is not valid")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Inventory not found")
	}
	var req updateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}

	item, err := h.uc.Update(c.Context(), userID, id, inventory.Patch{
		ProductName:  req.ProductName,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
		SupplierName: req.SupplierName,
		Category:     req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrNotFound):
			return presenter.Error(c, http.StatusBadRequest, "Inventory not found")
		case errors.Is(err, inventory.ErrNotOwner):
			return presenter.Error(c, http.StatusUnauthorized, "Invalid authorization")
		default:
			h.log.Error().Err(err).Msg("inventory update failed")
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}
	return presenter.JSON(c, http.StatusOK, toItemResponse(item))
}

// Delete removes one of the caller's items.
// @Summary Delete an inventory item by ID
// @Tags    inventory
// @Produce json
// @Param   id path string true "item ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	userID, ok := jwt.UserID(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Token is not valid")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "Product not found")
	}

	if err := h.uc.Delete(c.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, inventory.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "Product not found")
		case errors.Is(err, inventory.ErrNotOwner):
			return presenter.Error(c, http.StatusUnauthorized, "Invalid authorization")
		default:
			h.log.Error().Err(err).Msg("inventory delete failed")
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"msg": "Product deleted successfully"})
}
