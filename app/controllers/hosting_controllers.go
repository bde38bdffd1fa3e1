package controllers

import (
	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/resources"
	"github.com/shashiranjanraj/rentalease/app/services"
	"github.com/shashiranjanraj/rentalease/pkg/ctx"
	"github.com/shashiranjanraj/rentalease/pkg/resource"
)

type HostingController struct {
	service *services.HostingService
}

func NewHostingController(service *services.HostingService) *HostingController {
	return &HostingController{service: service}
}

func (h *HostingController) Create(c *ctx.Context) {
	var input services.HostingInput
	if !c.DecodeJSON(&input) {
		return
	}

	hosting, err := h.service.Create(c.Context(), input)
	if err != nil {
		c.Fail(err)
		return
	}

	c.Created(resource.Map{
		"message": "Hosting created successfully",
		"hosting": resource.New[models.Hosting](resources.Hosting{}, hosting),
	})
}

// Index returns every hosting as a bare JSON array.
func (h *HostingController) Index(c *ctx.Context) {
	hostings, err := h.service.List(c.Context())
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(resource.Collection[models.Hosting](resources.Hosting{}, hostings))
}

func (h *HostingController) Show(c *ctx.Context) {
	hosting, err := h.service.Get(c.Context(), c.Param("id"))
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(resource.New[models.Hosting](resources.Hosting{}, hosting))
}

func (h *HostingController) Destroy(c *ctx.Context) {
	if err := h.service.Delete(c.Context(), c.Param("id")); err != nil {
		c.Fail(err)
		return
	}
	c.Success(resource.Map{"message": "Hosting deleted successfully"})
}
