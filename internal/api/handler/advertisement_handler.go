package handler

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/classifieds-system/internal/core/domain"
	"github.com/99minutos/classifieds-system/internal/core/ports"
)

// AdvertisementHandler handles HTTP requests for listings.
type AdvertisementHandler struct {
	service ports.AdvertisementService
}

func NewAdvertisementHandler(service ports.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{service: service}
}

// Create handles POST /advertisement. The author is the authenticated user.
//
// @Summary      Create an advertisement
// @Tags         advertisements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdvertisementRequest  true  "Listing"
// @Success      201   {object}  advertisementResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /advertisement [post]
func (h *AdvertisementHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createAdvertisementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ad, err := h.service.Create(c.Request().Context(), caller, ports.CreateAdvertisementInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAdvertisementResponse(ad))
}

// Search handles GET /advertisement. Every query parameter is optional.
//
// @Summary      Search advertisements
// @Tags         advertisements
// @Produce      json
// @Param        title        query     string  false  "Case-insensitive substring of the title"
// @Param        description  query     string  false  "Case-insensitive substring of the description"
// @Param        author       query     string  false  "Case-insensitive substring of the author"
// @Param        price_min    query     number  false  "Inclusive lower price bound"
// @Param        price_max    query     number  false  "Inclusive upper price bound"
// @Success      200          {array}   advertisementResponse
// @Failure      422          {object}  errorResponse
// @Router       /advertisement [get]
func (h *AdvertisementHandler) Search(c echo.Context) error {
	filter, err := parseFilter(c.QueryParams())
	if err != nil {
		return err
	}

	ads, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdvertisementResponses(ads))
}

// Get handles GET /advertisement/:id.
//
// @Summary      Get an advertisement
// @Tags         advertisements
// @Produce      json
// @Param        id   path      string  true  "Advertisement id (UUID)"
// @Success      200  {object}  advertisementResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /advertisement/{id} [get]
func (h *AdvertisementHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ad, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdvertisementResponse(ad))
}

// Update handles PATCH /advertisement/:id. Only the author or an admin may
// update, and the patch may hand the listing to another author.
//
// @Summary      Update an advertisement
// @Tags         advertisements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Advertisement id (UUID)"
// @Param        body  body      updateAdvertisementRequest  true  "Fields to change"
// @Success      200   {object}  advertisementResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /advertisement/{id} [patch]
func (h *AdvertisementHandler) Update(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAdvertisementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ad, err := h.service.Update(c.Request().Context(), caller, id, req.toPatch())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdvertisementResponse(ad))
}

// Delete handles DELETE /advertisement/:id.
//
// @Summary      Delete an advertisement
// @Tags         advertisements
// @Security     BearerAuth
// @Param        id   path  string  true  "Advertisement id (UUID)"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /advertisement/{id} [delete]
func (h *AdvertisementHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// parseFilter reads the search parameters. A parameter that is present but
// empty still filters: every string contains "".
func parseFilter(q url.Values) (domain.AdvertisementFilter, error) {
	var f domain.AdvertisementFilter

	text := func(name string) *string {
		if _, ok := q[name]; !ok {
			return nil
		}
		v := q.Get(name)
		return &v
	}
	f.Title = text("title")
	f.Description = text("description")
	f.Author = text("author")

	price := func(name string) (*float64, error) {
		if _, ok := q[name]; !ok {
			return nil, nil
		}
		v, err := strconv.ParseFloat(q.Get(name), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be a number")
		}
		if v < 0 {
			return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be greater than or equal to 0")
		}
		return &v, nil
	}

	var err error
	if f.PriceMin, err = price("price_min"); err != nil {
		return domain.AdvertisementFilter{}, err
	}
	if f.PriceMax, err = price("price_max"); err != nil {
		return domain.AdvertisementFilter{}, err
	}
	return f, nil
}
