package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fragrance-store/libs"
	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/repositories"
	"fragrance-store/utils"
)

// AdminController is one generic CRUD surface parameterized by entity name.
// Products, categories, banners, navigation, orders, users and reviews all
// share the list/form/delete shape, so the entity rides in the route.
type AdminController struct {
	admin *repositories.AdminRepository
}

func NewAdminController(admin *repositories.AdminRepository) *AdminController {
	return &AdminController{admin: admin}
}

// ListEntities godoc
// @Summary List entities of one type
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param entity path string true "Entity type" Enums(products, categories, banners, navigation, orders, users, reviews)
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/{entity} [get]
func (ctrl *AdminController) ListEntities(c *gin.Context) {
	result, err := ctrl.admin.List(c.Request.Context(), middleware.AuthToken(c), c.Param("entity"), c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: result})
}

// GetEntity godoc
// @Summary Get one entity
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param entity path string true "Entity type"
// @Param id path string true "Entity id"
// @Success 200 {object} models.Response
// @Router /admin/{entity}/{id} [get]
func (ctrl *AdminController) GetEntity(c *gin.Context) {
	result, err := ctrl.admin.Get(c.Request.Context(), middleware.AuthToken(c), c.Param("entity"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: result})
}

// CreateEntity godoc
// @Summary Create an entity
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param entity path string true "Entity type"
// @Success 201 {object} models.Response
// @Router /admin/{entity} [post]
func (ctrl *AdminController) CreateEntity(c *gin.Context) {
	body, err := ctrl.readBody(c)
	if err != nil {
		return
	}

	result, err := ctrl.admin.Create(c.Request.Context(), middleware.AuthToken(c), c.Param("entity"), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Created",
		Data:    result,
	})
}

// UpdateEntity godoc
// @Summary Update an entity
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param entity path string true "Entity type"
// @Param id path string true "Entity id"
// @Success 200 {object} models.Response
// @Router /admin/{entity}/{id} [put]
func (ctrl *AdminController) UpdateEntity(c *gin.Context) {
	body, err := ctrl.readBody(c)
	if err != nil {
		return
	}

	result, err := ctrl.admin.Update(c.Request.Context(), middleware.AuthToken(c), c.Param("entity"), c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Updated",
		Data:    result,
	})
}

// DeleteEntity godoc
// @Summary Delete an entity
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param entity path string true "Entity type"
// @Param id path string true "Entity id"
// @Success 200 {object} models.Response
// @Router /admin/{entity}/{id} [delete]
func (ctrl *AdminController) DeleteEntity(c *gin.Context) {
	if err := ctrl.admin.Delete(c.Request.Context(), middleware.AuthToken(c), c.Param("entity"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Deleted",
	})
}

// Dashboard godoc
// @Summary Admin dashboard stats
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	result, err := ctrl.admin.Dashboard(c.Request.Context(), middleware.AuthToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Data: result})
}

// UploadImage godoc
// @Summary Upload an entity image
// @Description Stages the file locally then pushes it to Cloudinary; returns the hosted URL
// @Tags Admin
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/upload [post]
func (ctrl *AdminController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file required",
			Error:   err.Error(),
		})
		return
	}

	localPath, err := utils.SaveUploadedImage(c, fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	url, err := libs.UploadToCloudinary(localPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Image upload failed",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Image uploaded",
		Data:    gin.H{"url": url},
	})
}

func (ctrl *AdminController) readBody(c *gin.Context) (json.RawMessage, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(raw) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
		})
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return raw, nil
}
