package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/learnhub/learnhub-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for tracked products and their price
// histories.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type priceRequest struct {
	Date  *time.Time `json:"date"`
	Price float64    `json:"price" validate:"required,gt=0"`
	Store string     `json:"store"`
}

type createProductRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	URL         string         `json:"URL" validate:"required"`
	ImageURL    string         `json:"image_url"`
	Stores      []string       `json:"stores"`
	Prices      []priceRequest `json:"prices" validate:"dive"`
}

type updateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Stores      []string `json:"stores"`
}

// List returns every tracked product. Public.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  map[string][]domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "products", products)
}

// Get returns one product with its full price history. Public.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string]domain.Product
// @Failure      400  {object}  messageResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "product", product)
}

// Search matches the query against product names and descriptions,
// case-insensitively. Public.
//
// @Summary      Search products
// @Tags         products
// @Produce      json
// @Param        search  path      string  true  "Search term"
// @Success      200     {object}  map[string][]domain.Product
// @Failure      400     {object}  messageResponse
// @Router       /products/search/{search} [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.productService.Search(c.Request().Context(), c.Param("search"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "products", products)
}

// ByStore returns products carried by the given store. Public.
//
// @Summary      List products by store
// @Tags         products
// @Produce      json
// @Param        store  path      string  true  "Store name"
// @Success      200    {object}  map[string][]domain.Product
// @Failure      400    {object}  messageResponse
// @Router       /products/store/{store} [get]
func (h *ProductHandler) ByStore(c echo.Context) error {
	products, err := h.productService.ByStore(c.Request().Context(), c.Param("store"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "products", products)
}

// Recent returns the most recently created products, newest first. Public.
//
// @Summary      List recent products
// @Tags         products
// @Produce      json
// @Param        limit  query     int  false  "Max results (default 10)"
// @Success      200    {object}  map[string][]domain.Product
// @Router       /products/recent [get]
func (h *ProductHandler) Recent(c echo.Context) error {
	products, err := h.productService.Recent(c.Request().Context(), queryLimit(c))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "products", products)
}

// RecentByStore returns a store's most recently created products. Public.
//
// @Summary      List a store's recent products
// @Tags         products
// @Produce      json
// @Param        store  path      string  true   "Store name"
// @Param        limit  query     int     false  "Max results (default 10)"
// @Success      200    {object}  map[string][]domain.Product
// @Failure      400    {object}  messageResponse
// @Router       /products/recent/{store} [get]
func (h *ProductHandler) RecentByStore(c echo.Context) error {
	products, err := h.productService.RecentByStore(c.Request().Context(), c.Param("store"), queryLimit(c))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "products", products)
}

// PriceHistory returns the product's recorded prices in arrival order. Public.
//
// @Summary      Get a product's price history
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  map[string][]domain.PriceEntry
// @Failure      400  {object}  messageResponse
// @Router       /products/{id}/prices [get]
func (h *ProductHandler) PriceHistory(c echo.Context) error {
	product, err := h.productService.PriceHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "prices", product.Prices)
}

// Create registers a new tracked product. Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      200   {object}  map[string]domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	in := ports.CreateProductInput{
		Name:        req.Name,
		Owner:       ctxActor(c),
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
		Stores:      req.Stores,
		Prices:      make([]ports.PriceInput, 0, len(req.Prices)),
	}
	for _, p := range req.Prices {
		in.Prices = append(in.Prices, ports.PriceInput{Date: p.Date, Price: p.Price, Store: p.Store})
	}

	product, err := h.productService.Create(c.Request().Context(), ctxActor(c), in)
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "product", product)
}

// Update replaces the product's descriptive fields. The price history cannot
// be modified here; it only grows through AddPrice.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "New product fields"
// @Success      200   {object}  map[string]domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), ctxActor(c), c.Param("id"), ports.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Stores:      req.Stores,
	})
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "product", product)
}

// AddPrice appends one price observation to the product's history.
//
// @Summary      Record a price observation
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string        true  "Product id"
// @Param        body  body      priceRequest  true  "Observed price"
// @Success      200   {object}  map[string]domain.Product
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /products/{id}/add-price [patch]
func (h *ProductHandler) AddPrice(c echo.Context) error {
	var req priceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	product, err := h.productService.AddPrice(c.Request().Context(), ctxActor(c), c.Param("id"), ports.PriceInput{
		Date:  req.Date,
		Price: req.Price,
		Store: req.Store,
	})
	if err != nil {
		return err
	}
	return entity(c, http.StatusOK, "product", product)
}

// Delete removes the product and its history.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productService.Delete(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}
	return message(c, http.StatusOK, "Product deleted")
}

func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}
