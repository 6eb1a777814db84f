package handler

import (
	"time"

	"github.com/99minutos/classifieds-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Users ---

type createUserRequest struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required,max=72"`
	Role     domain.Role `json:"role"     validate:"omitempty,oneof=user admin"`
}

type updateUserRequest struct {
	Username *string      `json:"username" validate:"omitnil,min=1"`
	Password *string      `json:"password" validate:"omitnil,min=1,max=72"`
	Role     *domain.Role `json:"role"     validate:"omitnil,oneof=user admin"`
}

type userResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	CreatedAt string      `json:"created_at"`
}

// --- Advertisements ---

type createAdvertisementRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
}

type updateAdvertisementRequest struct {
	Title       *string  `json:"title"       validate:"omitnil,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitnil,gte=0"`
	Author      *string  `json:"author"      validate:"omitnil,min=1"`
}

type advertisementResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Author      string  `json:"author"`
	CreatedAt   string  `json:"created_at"`
}

// --- Mappers ---

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toAdvertisementResponse(ad domain.Advertisement) advertisementResponse {
	return advertisementResponse{
		ID:          ad.ID.String(),
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		Author:      ad.Author,
		CreatedAt:   ad.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toAdvertisementResponses(ads []domain.Advertisement) []advertisementResponse {
	out := make([]advertisementResponse, 0, len(ads))
	for _, ad := range ads {
		out = append(out, toAdvertisementResponse(ad))
	}
	return out
}

func (r updateAdvertisementRequest) toPatch() domain.AdvertisementPatch {
	return domain.AdvertisementPatch{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Author:      r.Author,
	}
}
