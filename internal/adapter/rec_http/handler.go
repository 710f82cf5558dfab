// Package rec_http exposes the inbound HTTP surface: the recommend operation
// and the greeting endpoint.
package rec_http

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"podcast-recommender/internal/domain"
	"podcast-recommender/internal/infra/logger"
	"podcast-recommender/internal/usecase"
)

// preferencesRequest is the wire shape of the recommend operation. The
// multi-select fields accept arrays, JSON-encoded arrays, comma strings or
// scalars (see domain.StringList).
type preferencesRequest struct {
	Age              string            `json:"age" validate:"required"`
	MusicGenre       domain.StringList `json:"music_genre" validate:"required,min=1"`
	PodcastFrequency string            `json:"podcast_frequency" validate:"required"`
	PodcastDuration  string            `json:"podcast_duration" validate:"required"`
	PodcastFormat    string            `json:"podcast_format" validate:"required"`
	PodcastContent   domain.StringList `json:"podcast_content" validate:"required,min=1"`
	ContentLanguage  string            `json:"content_language" validate:"required"`
	Region           string            `json:"region" validate:"required"`
	ListeningMood    string            `json:"listening_mood"`
	EnjoyedPodcasts  domain.StringList `json:"enjoyed_podcasts"`
	Gender           string            `json:"gender"`
	Education        string            `json:"education"`
	Employment       string            `json:"employment"`
}

func (r preferencesRequest) toDomain() domain.PreferencesRecord {
	return domain.PreferencesRecord{
		Age:              r.Age,
		MusicGenres:      r.MusicGenre,
		PodcastFrequency: r.PodcastFrequency,
		PodcastDuration:  r.PodcastDuration,
		PodcastFormat:    r.PodcastFormat,
		PodcastContent:   r.PodcastContent,
		ContentLanguage:  r.ContentLanguage,
		Region:           r.Region,
		ListeningMood:    r.ListeningMood,
		EnjoyedPodcasts:  r.EnjoyedPodcasts,
		Gender:           r.Gender,
		Education:        r.Education,
		Employment:       r.Employment,
	}
}

type errorResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// Handler serves the inbound HTTP operations.
type Handler struct {
	assign    usecase.AssignSegmentUsecase
	recommend usecase.RecommendUsecase
	validate  *validator.Validate
	logger    *logger.ContextLogger
}

// NewHandler wires the handler against the pipeline usecases.
func NewHandler(assign usecase.AssignSegmentUsecase, recommend usecase.RecommendUsecase, log *logger.ContextLogger) *Handler {
	v := validator.New()
	// Report json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{assign: assign, recommend: recommend, validate: v, logger: log}
}

// Greeting answers the root path.
// (GET /)
func (h *Handler) Greeting(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to the Podcast Recommender API",
	})
}

// Recommend runs the full pipeline for one preferences record.
// (POST /v1/recommend)
func (h *Handler) Recommend(c echo.Context) error {
	var req preferencesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if fields := h.validateRequest(req); len(fields) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Errors: fields})
	}

	prefs := req.toDomain()
	if err := prefs.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{Errors: verr.Fields})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := logger.WithRequestID(c.Request().Context(), uuid.NewString())

	segment, profile, err := h.assign.Assign(prefs)
	if err != nil {
		// Only unexpected internal faults reach here; anticipated
		// degradations are absorbed upstream.
		h.logger.WithContext(ctx).Error("segment assignment failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	ctx = logger.WithSegment(ctx, segment)
	items := h.recommend.Generate(ctx, prefs, profile)

	h.logger.WithContext(ctx).Info("recommendations served", slog.Int("count", len(items)))

	return c.JSON(http.StatusOK, domain.RecommendationResponse{
		Segment:         segment,
		SegmentProfile:  profile,
		Recommendations: items,
	})
}

func (h *Handler) validateRequest(req preferencesRequest) []domain.FieldError {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: "request", Reason: err.Error()}}
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:  fe.Field(),
			Reason: reasonForTag(fe.Tag()),
		})
	}
	return fields
}

func reasonForTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "min":
		return "must contain at least one value"
	default:
		return "is invalid"
	}
}
