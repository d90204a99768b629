package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/modece/storefront/app/services"
	"github.com/modece/storefront/pkg/bind"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/response"
	"github.com/modece/storefront/pkg/validate"
)

// maxUploadBytes caps the whole multipart form for product creation,
// covering up to four image slots.
const maxUploadBytes = 32 << 20 // 32 MB

// imageSlots are the multipart field names checked for uploads, in the
// order their URLs land on the product.
var imageSlots = [4]string{"image1", "image2", "image3", "image4"}

type ProductController struct {
	catalog *services.CatalogService
}

type addProductForm struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"       validate:"required,numeric"`
	Category    string `json:"category"    validate:"required"`
	SubCategory string `json:"subCategory" validate:"required"`
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Add handles POST /api/product/add (admin only, multipart form).
func (c *ProductController) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	form := addProductForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Category:    r.FormValue("category"),
		SubCategory: r.FormValue("subCategory"),
	}
	if errs := validate.Struct(&form); validate.HasErrors(errs) {
		response.FailValidation(w, errs)
		return
	}

	in := services.AddProductInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		Category:    form.Category,
		SubCategory: form.SubCategory,
		Sizes:       r.Form["sizes"],
		BestSeller:  r.FormValue("bestSeller"),
	}

	for _, slot := range imageSlots {
		file, header, err := r.FormFile(slot)
		if err != nil {
			continue // slot not submitted
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			response.Fail(w, http.StatusBadRequest, "Could not read uploaded file")
			return
		}
		in.Images = append(in.Images, services.ImageSlot{
			Name:     slot,
			Filename: header.Filename,
			Content:  content,
		})
	}

	product, err := c.catalog.Add(r.Context(), in)
	switch {
	case errors.Is(err, services.ErrInvalidPrice):
		response.Fail(w, http.StatusBadRequest, "Invalid price")
	case err != nil:
		logger.WithCtx(r.Context()).Error("product add failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusCreated, response.M{
			"message": "Product added",
			"product": product,
		})
	}
}

// List handles GET /api/product/list.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("product list failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(w, http.StatusOK, response.M{"products": products})
}

// Single and Remove take the product id under different body keys, the
// shape each storefront client actually sends.
type singleRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type removeRequest struct {
	ID string `json:"id" validate:"required"`
}

// Single handles POST /api/product/single.
func (c *ProductController) Single(w http.ResponseWriter, r *http.Request) {
	var req singleRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.FailValidation(w, errs)
		return
	}

	product, err := c.catalog.Get(r.Context(), req.ProductID)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		response.Fail(w, http.StatusNotFound, "Product not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("product single failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusOK, response.M{"product": product})
	}
}

// Remove handles POST /api/product/remove (admin only).
func (c *ProductController) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.FailValidation(w, errs)
		return
	}

	err := c.catalog.Remove(r.Context(), req.ID)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		response.Fail(w, http.StatusNotFound, "Product not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("product remove failed", "error", err)
		response.Fail(w, http.StatusInternalServerError, "Internal Server Error")
	default:
		response.Success(w, http.StatusOK, response.M{"message": "Product removed"})
	}
}
