package scenarios

import (
	"net/http"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"

	"github.com/gin-gonic/gin"
)

type catalog interface {
	List() []models.Scenario
	Get(name string) (models.Scenario, bool)
}

type Handler struct {
	catalog catalog
}

func NewHandler(cat catalog) *Handler {
	return &Handler{catalog: cat}
}

// List
// @Summary List scenario presets
// @Description Returns the named urban configuration presets that can be fed to the predict endpoints
// @Tags scenarios
// @Produce json
// @Success 200 {array} models.Scenario
// @Router /scenarios [get]
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// Get
// @Summary Get one scenario preset
// @Description Returns a single named preset
// @Tags scenarios
// @Produce json
// @Param name path string true "Scenario name"
// @Success 200 {object} models.Scenario
// @Failure 404
// @Router /scenarios/{name} [get]
func (h *Handler) Get(c *gin.Context) {
	name := c.Param("name")

	scenario, ok := h.catalog.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "scenario not found: " + name})
		return
	}

	c.JSON(http.StatusOK, scenario)
}
