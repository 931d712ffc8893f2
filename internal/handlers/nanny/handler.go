package nanny

import (
	"carehub/infras/otel"
	"carehub/internal/domains/nanny/model/dto"
	"carehub/internal/domains/nanny/service"
	"carehub/shared/constant"
	gDto "carehub/shared/dto"
	"carehub/shared/failure"
	"carehub/shared/validator"
	"carehub/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Nanny
	otel    otel.Otel
}

func New(service service.Nanny, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/nannies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateNanny)
		routerGroup.Get("/", handler.GetNannies)
		routerGroup.Get("/me", handler.GetMyProfile)
		routerGroup.Patch("/me", handler.UpdateMyProfile)
		routerGroup.Post("/me/gallery", handler.UploadGalleryImage)
		routerGroup.Delete("/me/gallery", handler.RemoveGalleryImage)
		routerGroup.Get("/{id}", handler.GetNannyByID)
		routerGroup.Get("/{id}/rate", handler.GetHourlyRate)
		routerGroup.Post("/{id}/reviews", handler.AddReview)
		routerGroup.Get("/{id}/reviews", handler.GetReviews)
	})
}

// CreateNanny creates the authenticated nanny's profile.
// @Summary Create a nanny profile
// @Description Create the profile of the authenticated nanny. A user can own a single profile.
// @Tags Nanny
// @Accept json
// @Produce json
// @Param request body dto.CreateNannyRequest true "Create Nanny Request"
// @Success 201 {object} response.Data[dto.NannyResponse] "Nanny profile created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies [post]
// @Security BearerAuth
func (handler *Handler) CreateNanny(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNanny")
	defer scope.End()

	req := dto.CreateNannyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	nanny, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create nanny profile")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Nanny profile created for user " + nanny.UserID)

	response.WithJSON(writer, http.StatusCreated, nanny)
}

// GetNannies searches nanny profiles.
// @Summary Search nannies
// @Description List nanny profiles, best rated first. Array filters take comma separated values and match any of them.
// @Tags Nanny
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param min_rate query number false "Minimum hourly rate"
// @Param max_rate query number false "Maximum hourly rate"
// @Param min_experience query number false "Minimum years of experience"
// @Param min_rating query number false "Minimum average rating"
// @Param special_needs query bool false "Special needs experience"
// @Param skills query string false "Comma separated skills"
// @Param languages query string false "Comma separated languages"
// @Param age_groups query string false "Comma separated age groups"
// @Param services query string false "Comma separated services"
// @Success 200 {object} response.Data[dto.GetNanniesResponse] "List of nannies"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies [get]
func (handler *Handler) GetNannies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNannies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := dto.SearchNanniesRequest{}
	search.FromRequest(r)

	nannies, err := handler.service.GetAll(ctx, queryParams, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get nannies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Nannies retrieved successfully")

	response.WithJSON(w, http.StatusOK, nannies)
}

// GetMyProfile returns the authenticated nanny's profile.
// @Summary Get my nanny profile
// @Tags Nanny
// @Produce json
// @Success 200 {object} response.Data[dto.NannyResponse] "Nanny profile"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/me [get]
// @Security BearerAuth
func (handler *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyProfile")
	defer scope.End()

	nanny, err := handler.service.GetMe(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get nanny profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, nanny)
}

// UpdateMyProfile partially updates the authenticated nanny's profile.
// @Summary Update my nanny profile
// @Description Partially update the profile. Changing the hourly rate does not reprice existing bookings.
// @Tags Nanny
// @Accept json
// @Produce json
// @Param request body dto.UpdateNannyRequest true "Update Nanny Request"
// @Success 200 {object} response.Data[dto.NannyResponse] "Nanny profile updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMyProfile")
	defer scope.End()

	req := dto.UpdateNannyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	nanny, err := handler.service.UpdateMe(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update nanny profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Nanny profile updated")

	response.WithJSON(w, http.StatusOK, nanny)
}

// UploadGalleryImage adds an image to the authenticated nanny's gallery.
// @Summary Upload a gallery image
// @Description Upload a png, jpeg or webp image of at most 5 MB to the nanny's gallery.
// @Tags Nanny
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 201 {object} response.Data[dto.NannyResponse] "Image added"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/me/gallery [post]
// @Security BearerAuth
func (handler *Handler) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadGalleryImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequest(err))

		return
	}
	defer file.Close()

	req := dto.UploadGalleryImageRequest{Image: fileHeader}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	nanny, err := handler.service.UploadGalleryImage(ctx, req.Image)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload gallery image")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Gallery image uploaded for nanny " + nanny.ID)

	response.WithJSON(w, http.StatusCreated, nanny)
}

// RemoveGalleryImage removes an image from the authenticated nanny's gallery.
// @Summary Remove a gallery image
// @Tags Nanny
// @Accept json
// @Produce json
// @Param request body dto.RemoveGalleryImageRequest true "Remove Gallery Image Request"
// @Success 200 {object} response.Data[dto.NannyResponse] "Image removed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/me/gallery [delete]
// @Security BearerAuth
func (handler *Handler) RemoveGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveGalleryImage")
	defer scope.End()

	req := dto.RemoveGalleryImageRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	nanny, err := handler.service.RemoveGalleryImage(ctx, req.URL)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove gallery image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, nanny)
}

// GetNannyByID retrieves a nanny profile.
// @Summary Get a nanny by ID
// @Tags Nanny
// @Produce json
// @Param id path string true "Nanny ID"
// @Success 200 {object} response.Data[dto.NannyResponse] "Nanny profile"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/{id} [get]
func (handler *Handler) GetNannyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNannyByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	nanny, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get nanny by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, nanny)
}

// GetHourlyRate returns the nanny's current hourly rate.
// @Summary Get a nanny's hourly rate
// @Tags Nanny
// @Produce json
// @Param id path string true "Nanny ID"
// @Success 200 {object} response.Data[dto.HourlyRateResponse] "Hourly rate"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/{id}/rate [get]
func (handler *Handler) GetHourlyRate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHourlyRate")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rate, err := handler.service.GetHourlyRate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hourly rate")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rate)
}

// AddReview rates a nanny.
// @Summary Review a nanny
// @Description Parents rate a nanny once. The review is verified when the parent has a completed booking with the nanny.
// @Tags Nanny
// @Accept json
// @Produce json
// @Param id path string true "Nanny ID"
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Data[dto.AddReviewResponse] "Review added"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/{id}/reviews [post]
// @Security BearerAuth
func (handler *Handler) AddReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.AddReview(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review added for nanny " + id)

	response.WithJSON(w, http.StatusCreated, review)
}

// GetReviews lists a nanny's reviews, newest first.
// @Summary Get a nanny's reviews
// @Tags Nanny
// @Produce json
// @Param id path string true "Nanny ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "List of reviews"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/nannies/{id}/reviews [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	reviews, err := handler.service.GetReviews(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}
